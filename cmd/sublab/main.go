package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/san-kum/sublab/internal/automation"
	"github.com/san-kum/sublab/internal/config"
	"github.com/san-kum/sublab/internal/export"
	"github.com/san-kum/sublab/internal/lab"
	"github.com/san-kum/sublab/internal/logging"
	"github.com/san-kum/sublab/internal/storage"
	"github.com/san-kum/sublab/internal/surface"
	"github.com/san-kum/sublab/internal/tui"
	"github.com/san-kum/sublab/internal/tutorial"
	"github.com/san-kum/sublab/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	preset     string
	logLevel   string
	logFile    string
	// run and replay
	hypothesis string
	instant    bool
	save       bool
	// export-svg
	outFile string
	// config init
	force bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "sublab",
		Short:         "naphthalene sublimation lab",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runInteractive,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset pacing")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "log file (interactive mode)")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run the experiment without the interactive screen",
		Args:  cobra.NoArgs,
		RunE:  runHeadless,
	}
	runCmd.Flags().StringVar(&hypothesis, "hypothesis", string(lab.Sublimates), "hypothesis (melts-first, sublimates, no-change)")
	runCmd.Flags().BoolVar(&instant, "instant", false, "tick without waiting")
	runCmd.Flags().BoolVar(&save, "save", false, "save the run to the notebook")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "show a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export the temperature curve as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVarP(&outFile, "output", "o", "", "output file (default stdout)")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	replayCmd := &cobra.Command{
		Use:   "replay [scenario.yaml]",
		Short: "replay a scripted session",
		Args:  cobra.ExactArgs(1),
		RunE:  replayScenario,
	}
	replayCmd.Flags().BoolVar(&instant, "instant", false, "tick without waiting")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage the config file",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write a default config file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	}
	configInitCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(runCmd, listCmd, showCmd, exportSVGCmd, exportJSONCmd, replayCmd, presetsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// loadConfig layers the config file, the preset and changed flags, in that order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if preset != "" {
		if err := cfg.ApplyPreset(preset); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("data") || configFile == "" {
		cfg.DataDir = dataDir
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("log-file") {
		cfg.LogFile = logFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closer, err := logging.OpenFile(cfg.LogLevel, cfg.LogPath())
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer closer.Close()

	st := storage.New(cfg.DataDir)
	if err := st.Init(); err != nil {
		return err
	}

	logger.Info("interactive session started", "tick_interval", cfg.TickInterval, "theme", cfg.Theme)
	return tui.Run(tui.Options{Config: cfg, Store: st, Logger: logger})
}

func headlessLogger(cfg *config.Config) *slog.Logger {
	return logging.NewLogger(cfg.LogLevel, os.Stderr)
}

func tickInterval(cfg *config.Config) time.Duration {
	if instant {
		return 0
	}
	return cfg.TickInterval
}

func printProgress(e surface.Event) {
	switch e := e.(type) {
	case surface.StepShown:
		fmt.Printf("[%d/%d] %s\n", e.Step, e.Total, e.Title)
	case surface.ReadingChanged:
		if e.Minute > 0 {
			fmt.Printf("  %2d min  %3d°C  %s\n", e.Minute, e.Temperature, e.Status)
		}
	case surface.ApparatusChanged:
		if e.Active && e.Part != lab.PartHeater {
			fmt.Printf("  * %s\n", e.Part)
		}
	case surface.Chime:
		fmt.Println("  experiment complete")
	}
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	h, err := lab.ParseHypothesis(hypothesis)
	if err != nil {
		return err
	}
	if !h.Valid() {
		return fmt.Errorf("%w: a hypothesis is required", lab.ErrUnknownHypothesis)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger := headlessLogger(cfg)
	session := tutorial.NewSession(surface.NewBus(logger, surface.Func(printProgress)), logger)
	session.Init()

	session.Advance()
	session.AcknowledgeSafety(true)
	session.Advance()
	session.SelectHypothesis(h)
	session.Advance()
	if _, ok := session.StartExperiment(); !ok {
		return fmt.Errorf("experiment did not start at step %d", session.Step())
	}

	if err := tutorial.Drive(ctx, session, tickInterval(cfg)); err != nil {
		return err
	}
	for session.Advance() {
	}

	st := session.State()
	fmt.Println()
	fmt.Print(viz.ObservationTable(st.Experiment.Observations))
	fmt.Println()
	fmt.Println(viz.Curve(st.Experiment.Curve, 60, 10))
	fmt.Println()
	printReveal(session.Reveal())
	fmt.Println()
	if err := printMetrics(st.Experiment.Metrics); err != nil {
		return err
	}

	if save {
		store := storage.New(cfg.DataDir)
		if err := store.Init(); err != nil {
			return err
		}
		id, err := store.Save(st, cfg.TickInterval)
		if err != nil {
			return fmt.Errorf("save run: %w", err)
		}
		logger.Info("run saved", "id", id)
		fmt.Printf("\nsaved: %s\n", id)
	}
	return nil
}

func printReveal(r lab.Reveal) {
	fmt.Println(r.Headline)
	fmt.Printf("  your hypothesis: %s\n", r.Choice)
	fmt.Printf("  what happened:   %s\n", r.Answer)
	fmt.Printf("  %s\n", r.Body)
}

func printMetrics(metrics map[string]float64) error {
	names := make([]string, 0, len(metrics))
	for name := range metrics {
		names = append(names, name)
	}
	sort.Strings(names)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tVALUE")
	for _, name := range names {
		fmt.Fprintf(w, "%s\t%.1f\n", name, metrics[name])
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	runs, err := storage.New(cfg.DataDir).List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tHYPOTHESIS\tCORRECT\tROWS\tTICK")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%t\t%d\t%s\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Hypothesis,
			run.Correct,
			run.Observations,
			run.TickInterval,
		)
	}

	return w.Flush()
}

func loadRun(cmd *cobra.Command, runID string) (*storage.RunMetadata, *storage.Store, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	st := storage.New(cfg.DataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return nil, nil, err
	}
	return meta, st, nil
}

func showRun(cmd *cobra.Command, args []string) error {
	meta, st, err := loadRun(cmd, args[0])
	if err != nil {
		return err
	}
	obs, err := st.LoadObservations(meta.ID)
	if err != nil {
		return err
	}
	curve, err := st.LoadCurve(meta.ID)
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("time: %s\n", meta.Timestamp.Format("2006-01-02 15:04:05"))
	fmt.Printf("minutes: %d\n\n", meta.Minutes)

	fmt.Print(viz.ObservationTable(obs))
	fmt.Println()
	if graph := viz.Curve(curve, 60, 10); graph != "" {
		fmt.Println(graph)
		fmt.Println()
	}
	printReveal(lab.RevealFor(meta.Hypothesis))
	fmt.Println()
	return printMetrics(meta.Metrics)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	meta, st, err := loadRun(cmd, args[0])
	if err != nil {
		return err
	}
	obs, err := st.LoadObservations(meta.ID)
	if err != nil {
		return err
	}
	curve, err := st.LoadCurve(meta.ID)
	if err != nil {
		return err
	}

	svg := export.CurveSVG(curve, obs, 640, 320, string(viz.ThemeLab.Heat))
	if svg == "" {
		return fmt.Errorf("no data to plot")
	}

	if outFile == "" {
		_, err := fmt.Fprint(os.Stdout, svg)
		return err
	}
	if err := os.WriteFile(outFile, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outFile)
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	meta, st, err := loadRun(cmd, args[0])
	if err != nil {
		return err
	}
	obs, err := st.LoadObservations(meta.ID)
	if err != nil {
		return err
	}
	curve, err := st.LoadCurve(meta.ID)
	if err != nil {
		return err
	}

	report := export.NewReport(meta.ID, meta.Timestamp, meta.Hypothesis, obs, curve, meta.Metrics)
	return export.WriteJSON(os.Stdout, report)
}

func replayScenario(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	scenario, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger := headlessLogger(cfg)
	session := tutorial.NewSession(surface.NewBus(logger), logger)
	session.Init()

	fmt.Printf("scenario: %s\n", scenario.Name)
	if scenario.Description != "" {
		fmt.Printf("  %s\n", scenario.Description)
	}
	fmt.Println()

	results, runErr := automation.RunScenario(ctx, scenario, session, tickInterval(cfg))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tACTION\tAPPLIED\tSTEP")
	for _, r := range results {
		fmt.Fprintf(w, "%d\t%s\t%d\t%d %s\n", r.Index, r.Action, r.Applied, r.Step, r.Step.Info().Title)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if runErr != nil {
		return runErr
	}

	st := session.State()
	fmt.Printf("\nfinal: step %d, simulator %s, %d observations\n",
		st.Step, st.Experiment.Status, len(st.Experiment.Observations))
	if st.Step == tutorial.StepResults {
		fmt.Println()
		printReveal(session.Reveal())
	}
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tTICK\tCHIME\tDESCRIPTION")
	for _, name := range config.ListPresets() {
		p, _ := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%s\t%t\t%s\n", name, p.TickInterval, p.Chime, p.Description)
	}
	return w.Flush()
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := "sublab.yaml"
	if len(args) > 0 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	cfg := config.DefaultConfig()
	if preset != "" {
		if err := cfg.ApplyPreset(preset); err != nil {
			return err
		}
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
