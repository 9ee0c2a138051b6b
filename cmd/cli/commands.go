package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(rankingCmd)
	rootCmd.AddCommand(announceCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(setRulesCmd)
	rootCmd.AddCommand(resetRulesCmd)
	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(metricsCmd)

	rankingCmd.Flags().String("search", "", "Filter by name or membership code")
	rankingCmd.Flags().String("age", "all", "Age bracket: all, u18, 18-30, 31-45, 46plus")
	rankingCmd.Flags().String("gender", "all", "Gender: all, M, F")
	rankingCmd.Flags().String("tournament", "all", "Only players with points in this tournament id")

	setRulesCmd.Flags().Float64("win", 0, "Points per recorded win")
	setRulesCmd.Flags().Float64("loss", 0, "Points per recorded loss")

	recordCmd.Flags().String("player", "", "Player id")
	recordCmd.Flags().String("tournament", "", "Tournament id")
	recordCmd.Flags().String("stage", "", "Stage reached, e.g. final")
	recordCmd.Flags().Float64("points", 0, "Points earned")
	recordCmd.MarkFlagRequired("player")
	recordCmd.MarkFlagRequired("tournament")
	recordCmd.MarkFlagRequired("points")
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var rankingCmd = &cobra.Command{
	Use:   "ranking",
	Short: "Show the ranking, optionally filtered",
	RunE: func(cmd *cobra.Command, args []string) error {
		search, _ := cmd.Flags().GetString("search")
		age, _ := cmd.Flags().GetString("age")
		gender, _ := cmd.Flags().GetString("gender")
		tournament, _ := cmd.Flags().GetString("tournament")
		return performGetRequest(rankingPath(search, age, gender, tournament))
	},
}

var announceCmd = &cobra.Command{
	Use:   "announce",
	Short: "Post the top of the ranking to Slack",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodPost, "/ranking/announce", nil)
	},
}

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "List the players in the club store",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/players")
	},
}

var reportCmd = &cobra.Command{
	Use:   "report <player-id>",
	Short: "Show a player's points breakdown",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/players/" + url.PathEscape(args[0]) + "/report")
	},
}

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Show the current win/loss bonus rules",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/rules")
	},
}

var setRulesCmd = &cobra.Command{
	Use:   "set-rules",
	Short: "Set the win/loss bonus rules",
	RunE: func(cmd *cobra.Command, args []string) error {
		win, _ := cmd.Flags().GetFloat64("win")
		loss, _ := cmd.Flags().GetFloat64("loss")
		return performRequest(http.MethodPut, "/rules", map[string]float64{"winPoints": win, "lossPoints": loss})
	},
}

var resetRulesCmd = &cobra.Command{
	Use:   "reset-rules",
	Short: "Go back to ranking on tournament points only",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodPost, "/rules/reset", nil)
	},
}

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record tournament points for a player",
	RunE: func(cmd *cobra.Command, args []string) error {
		player, _ := cmd.Flags().GetString("player")
		tournament, _ := cmd.Flags().GetString("tournament")
		stage, _ := cmd.Flags().GetString("stage")
		points, _ := cmd.Flags().GetFloat64("points")
		return performRequest(http.MethodPost, "/events", map[string]any{
			"playerId":     player,
			"tournamentId": tournament,
			"stage":        stage,
			"points":       points,
		})
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Get the persistent activity counters",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/stats")
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

// rankingPath builds the /ranking query, leaving out criteria that match everyone.
func rankingPath(search, age, gender, tournament string) string {
	q := url.Values{}
	if s := strings.TrimSpace(search); s != "" {
		q.Set("search", s)
	}
	for key, v := range map[string]string{"age": age, "gender": gender, "tournament": tournament} {
		if v != "" && v != "all" {
			q.Set(key, v)
		}
	}
	if len(q) == 0 {
		return "/ranking"
	}
	return "/ranking?" + q.Encode()
}

// withParams appends the global dry_run and verbose flags to an endpoint.
func withParams(endpoint string, dryRun, verbose bool) string {
	var params []string
	if dryRun {
		params = append(params, "dry_run=true")
	}
	if verbose {
		params = append(params, "verbose=true")
	}
	if len(params) == 0 {
		return endpoint
	}
	sep := "?"
	if strings.Contains(endpoint, "?") {
		sep = "&"
	}
	return endpoint + sep + strings.Join(params, "&")
}

func performGetRequest(endpoint string) error {
	return performRequest(http.MethodGet, endpoint, nil)
}

func performRequest(method, endpoint string, payload any) error {
	url := host + withParams(endpoint, dryRun, verbose)
	fmt.Printf("Making %s request to %s\n", method, url)

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(respBody))

	if resp.StatusCode >= 400 {
		return fmt.Errorf("server returned %s", resp.Status)
	}
	return nil
}
