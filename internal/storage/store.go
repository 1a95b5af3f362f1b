// Package storage persists simulation runs as per-run directories with
// a metadata file and a CSV trajectory table.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/springmesh/internal/sim"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Scenario  string             `json:"scenario"`
	Timestamp time.Time          `json:"timestamp"`
	Dt        float64            `json:"dt"`
	Steps     int                `json:"steps"`
	Metrics   map[string]float64 `json:"metrics"`
	Errors    int                `json:"errors"`
}

// Save writes one run: metadata.json plus trajectory.csv holding the
// time column and four columns (x, y, vx, vy) per tracked mass.
func (s *Store) Save(scenarioName string, dt float64, steps int, result *sim.Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", scenarioName, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Scenario:  scenarioName,
		Timestamp: time.Now(),
		Dt:        dt,
		Steps:     steps,
		Metrics:   result.Metrics,
		Errors:    len(result.Errors),
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "trajectory.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	tracked := make([]int, 0, len(result.Tracks))
	for i := range result.Tracks {
		tracked = append(tracked, i)
	}
	sort.Ints(tracked)

	header := []string{"time"}
	for _, i := range tracked {
		header = append(header,
			fmt.Sprintf("m%d_x", i), fmt.Sprintf("m%d_y", i),
			fmt.Sprintf("m%d_vx", i), fmt.Sprintf("m%d_vy", i))
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for row := range result.Times {
		record := []string{strconv.FormatFloat(result.Times[row], 'f', 6, 64)}
		for _, i := range tracked {
			snap := result.Tracks[i][row]
			record = append(record,
				strconv.FormatFloat(snap.Position.X, 'g', -1, 64),
				strconv.FormatFloat(snap.Position.Y, 'g', -1, 64),
				strconv.FormatFloat(snap.Velocity.X, 'g', -1, 64),
				strconv.FormatFloat(snap.Velocity.Y, 'g', -1, 64))
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}

	w.Flush()
	return runID, w.Error()
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadTrajectory returns the column headers and the numeric rows of a
// saved run's trajectory table.
func (s *Store) LoadTrajectory(runID string) ([]string, [][]float64, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "trajectory.csv"))
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) < 1 {
		return nil, nil, fmt.Errorf("trajectory %s is empty", runID)
	}

	header := records[0]
	rows := make([][]float64, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make([]float64, 0, len(record))
		for _, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("trajectory %s: %w", runID, err)
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}

	return header, rows, nil
}
