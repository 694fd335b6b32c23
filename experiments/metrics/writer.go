package metrics

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

type GameRecord struct {
	ID    int
	Agent int // AgentConfig.ID
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type Writer struct {
	RunID   uuid.UUID
	baseDir string
	create  func(path string) (io.WriteCloser, error)
}

func createFile(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

// NewWriter creates experiments/<name>/<run id> under root.
func NewWriter(root, name string) (*Writer, error) {
	runID := uuid.New()
	baseDir := filepath.Join(root, "experiments", name, runID.String())
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		RunID:   runID,
		baseDir: baseDir,
		create:  createFile,
	}, nil
}

// Dir is the directory the records are written to.
func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) write(file string, header []string, rows [][]string) (err error) {
	path := filepath.Join(w.baseDir, file)
	f, err := w.create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", file, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", file, cerr)
		}
	}()

	writer := csv.NewWriter(f)
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", file, err)
	}
	err = writer.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("failed to write %s rows: %w", file, err)
	}
	return nil
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "scorer", "goroutines", "beam_width", "depth", "eval_limit", "hold", "weights"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		weights := make([]string, len(config.Weights))
		for i, w := range config.Weights {
			weights[i] = strconv.FormatFloat(w, 'g', -1, 64)
		}
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Scorer,
			strconv.Itoa(config.Goroutines),
			strconv.Itoa(config.BeamWidth),
			strconv.Itoa(config.Depth),
			strconv.Itoa(config.EvalLimit),
			strconv.FormatBool(config.Hold),
			strings.Join(weights, " "),
		})
	}
	return w.write("agent_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "agent", "seed", "score", "pieces", "lines", "tspins", "perfect_clears", "start_time", "end_time", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Agent),
			strconv.FormatUint(record.Seed, 10),
			strconv.FormatFloat(record.Score, 'f', -1, 64),
			strconv.Itoa(record.Pieces),
			strconv.Itoa(record.Lines),
			strconv.Itoa(record.TSpins),
			strconv.Itoa(record.PerfectClears),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		})
	}
	return w.write("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "piece", "swap", "score", "goroutines", "depth", "beam_width", "candidates", "evaluated", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Piece,
			strconv.FormatBool(record.Swap),
			strconv.FormatFloat(record.Score, 'f', -1, 64),
			strconv.Itoa(record.Goroutines),
			strconv.Itoa(record.Depth),
			strconv.Itoa(record.BeamWidth),
			strconv.Itoa(record.Candidates),
			strconv.Itoa(record.Evaluated),
			record.Duration.String(),
		})
	}
	return w.write("move_records.csv", header, rows)
}
