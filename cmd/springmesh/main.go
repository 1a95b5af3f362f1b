package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/springmesh/internal/config"
	"github.com/san-kum/springmesh/internal/export"
	"github.com/san-kum/springmesh/internal/mesh"
	"github.com/san-kum/springmesh/internal/scenario"
	"github.com/san-kum/springmesh/internal/storage"
	"github.com/san-kum/springmesh/internal/viz"
)

var (
	dataDir    string
	dt         float64
	steps      int
	output     string
	configFile string
	preset     string
	// SVG export
	svgWidth  int
	svgHeight int
	svgOut    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "springmesh",
		Short: "2D mass/spring simulation lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".springmesh", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [scenario]",
		Short: "run a scenario",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}
	runCmd.Flags().Float64Var(&dt, "dt", 0, "timestep override")
	runCmd.Flags().IntVar(&steps, "steps", 0, "step count override")
	runCmd.Flags().StringVar(&output, "out", "", "trajectory file name override")
	runCmd.Flags().StringVar(&configFile, "config", "", "scenario config file (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	scenariosCmd := &cobra.Command{
		Use:   "scenarios",
		Short: "list builtin scenarios",
		RunE:  listScenarios,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [scenario]",
		Short: "list available presets for a scenario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for scenario: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run trajectory to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export run trajectory to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().IntVar(&svgWidth, "width", 640, "image width")
	exportSVGCmd.Flags().IntVar(&svgHeight, "height", 480, "image height")
	exportSVGCmd.Flags().StringVar(&svgOut, "out", "", "output file (default stdout)")

	liveCmd := &cobra.Command{
		Use:   "live [scenario]",
		Short: "run a scenario with live visualization",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().Float64Var(&dt, "dt", 0, "timestep override")
	liveCmd.Flags().IntVar(&steps, "steps", 0, "step count override")
	liveCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	rootCmd.AddCommand(runCmd, scenariosCmd, presetsCmd, listCmd, plotCmd,
		exportCSVCmd, exportJSONCmd, exportSVGCmd, liveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveScenario builds the scenario to run: builtin by name, then
// preset, then config file, then explicit flags, later sources winning.
func resolveScenario(cmd *cobra.Command, name string) (scenario.Scenario, error) {
	sc, ok := scenario.Get(name)
	if !ok {
		return scenario.Scenario{}, fmt.Errorf("unknown scenario: %s (available: %v)", name, scenario.Names())
	}

	if preset != "" {
		cfg := config.GetPreset(name, preset)
		if cfg == nil {
			return scenario.Scenario{}, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(name))
		}
		var err error
		sc, err = cfg.ToScenario()
		if err != nil {
			return scenario.Scenario{}, err
		}
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return scenario.Scenario{}, fmt.Errorf("failed to load config: %w", err)
		}
		sc, err = cfg.ToScenario()
		if err != nil {
			return scenario.Scenario{}, err
		}
	}

	if cmd.Flags().Changed("dt") {
		sc.Dt = dt
	}
	if cmd.Flags().Changed("steps") {
		sc.Steps = steps
	}
	if cmd.Flags().Changed("out") {
		sc.Output = output
	}

	return sc, nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	sc, err := resolveScenario(cmd, args[0])
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	desc := sc.Description
	if desc == "" {
		desc = sc.Name
	}
	fmt.Printf("%s...", desc)
	start := time.Now()

	result, err := scenario.Run(context.Background(), sc, ".")
	if err != nil {
		return err
	}

	fmt.Printf("done (%v)\n", time.Since(start))

	runID, err := st.Save(sc.Name, sc.Dt, sc.Steps, result)
	if err != nil {
		return err
	}

	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", result.StepsTaken)
	if sc.Output != "" {
		fmt.Printf("trajectory: %s\n", sc.Output)
	}
	if len(result.Errors) > 0 {
		fmt.Printf("step errors: %d (first: %v)\n", len(result.Errors), result.Errors[0])
	}
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	return nil
}

func listScenarios(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tMASSES\tSPRINGS\tDT\tSTEPS\tDESCRIPTION")
	for _, sc := range scenario.Builtin() {
		fmt.Fprintf(w, "%s\t%d\t%d\t%.4g\t%d\t%s\n",
			sc.Name, len(sc.Masses), len(sc.Springs), sc.Dt, sc.Steps, sc.Description)
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENARIO\tTIME\tDT\tSTEPS\tERRORS")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.4gs\t%d\t%d\n",
			run.ID,
			run.Scenario,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Dt,
			run.Steps,
			run.Errors,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	header, rows, err := st.LoadTrajectory(runID)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("scenario: %s\n", meta.Scenario)
	fmt.Printf("samples: %d\n\n", len(rows))

	// column 0 is time
	for col := 1; col < len(header); col++ {
		data := make([]float64, len(rows))
		for i := range rows {
			data[i] = rows[i][col]
		}

		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(header[col]+" vs time"),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	header, rows, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		record := make([]string, len(row))
		for i, v := range row {
			record[i] = strconv.FormatFloat(v, 'f', 6, 64)
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	header, rows, err := st.LoadTrajectory(runID)
	if err != nil {
		return err
	}

	data := struct {
		ID       string             `json:"id"`
		Scenario string             `json:"scenario"`
		Dt       float64            `json:"dt"`
		Steps    int                `json:"steps"`
		Metrics  map[string]float64 `json:"metrics"`
		Columns  []string           `json:"columns"`
		Rows     [][]float64        `json:"rows"`
	}{
		ID:       meta.ID,
		Scenario: meta.Scenario,
		Dt:       meta.Dt,
		Steps:    meta.Steps,
		Metrics:  meta.Metrics,
		Columns:  header,
		Rows:     rows,
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	header, rows, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}
	if len(header) < 3 {
		return fmt.Errorf("run has no tracked mass")
	}

	// first tracked mass: columns 1 (x) and 2 (y)
	points := make([]mesh.Vec2, len(rows))
	for i, row := range rows {
		points[i] = mesh.Vec2{X: row[1], Y: row[2]}
	}

	svg := export.TrajectoryToSVG(points, svgWidth, svgHeight, "#00ff88")
	if svg == "" {
		return fmt.Errorf("not enough points to export")
	}

	if svgOut == "" {
		fmt.Println(svg)
		return nil
	}
	return os.WriteFile(svgOut, []byte(svg), 0644)
}

func runLive(cmd *cobra.Command, args []string) error {
	sc, err := resolveScenario(cmd, args[0])
	if err != nil {
		return err
	}

	m, err := viz.NewModel(sc)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
