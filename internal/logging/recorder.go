package logging

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"gaops/internal/ga"
)

// Recorder writes every observed operator call to CSV and JSON-lines files.
// It implements ga.Observer and is safe for concurrent use.
type Recorder struct {
	csvPath  string
	jsonPath string

	mu        sync.Mutex
	csvFile   *os.File
	csvWriter *csv.Writer
	jsonFile  *os.File
	console   io.Writer
	counts    map[string]*OperatorSummary
	writeErr  error

	initialized bool
}

// OperatorSummary aggregates the events of one operator
type OperatorSummary struct {
	Operator string `json:"operator"`
	Calls    int    `json:"calls"`
	Errors   int    `json:"errors"`
	Changed  int    `json:"changed"`
	Dropped  int    `json:"dropped"`
}

// EventRecord is the JSON form of a ga.Event
type EventRecord struct {
	Seq       int    `json:"seq"`
	Operator  string `json:"operator"`
	ParentLen int    `json:"parent_len"`
	ChildLens []int  `json:"child_lens"`
	Changed   int    `json:"changed"`
	Dropped   int    `json:"dropped"`
	Error     string `json:"error,omitempty"`
}

// NewRecorder creates a recorder; parent directories are created immediately
func NewRecorder(csvPath, jsonPath string) (*Recorder, error) {
	r := &Recorder{
		csvPath:  csvPath,
		jsonPath: jsonPath,
		counts:   make(map[string]*OperatorSummary),
	}

	// Ensure directories exist
	if err := os.MkdirAll(filepath.Dir(csvPath), 0755); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(jsonPath), 0755); err != nil {
		return nil, err
	}

	return r, nil
}

// SetConsole echoes one line per event to w; nil disables it
func (r *Recorder) SetConsole(w io.Writer) {
	r.mu.Lock()
	r.console = w
	r.mu.Unlock()
}

// Init opens the trace files and writes the CSV header
func (r *Recorder) Init() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var err error

	r.csvFile, err = os.Create(r.csvPath)
	if err != nil {
		return err
	}
	r.csvWriter = csv.NewWriter(r.csvFile)

	header := []string{"seq", "operator", "parent_len", "child_lens", "changed", "dropped", "error"}
	if err := r.csvWriter.Write(header); err != nil {
		return err
	}
	r.csvWriter.Flush()

	r.jsonFile, err = os.OpenFile(r.jsonPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}

	r.initialized = true
	return nil
}

// Close flushes and closes the trace files and returns the first write error, if any
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	errs := []error{r.writeErr}
	if r.csvWriter != nil {
		r.csvWriter.Flush()
		errs = append(errs, r.csvWriter.Error())
	}
	if r.csvFile != nil {
		errs = append(errs, r.csvFile.Close())
	}
	if r.jsonFile != nil {
		errs = append(errs, r.jsonFile.Close())
	}
	r.csvWriter, r.csvFile, r.jsonFile = nil, nil, nil
	r.initialized = false
	return errors.Join(errs...)
}

// Observe records one operator call. Events arriving before Init or after Close only update the summary.
func (r *Recorder) Observe(ev ga.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sum, ok := r.counts[ev.Operator]
	if !ok {
		sum = &OperatorSummary{Operator: ev.Operator}
		r.counts[ev.Operator] = sum
	}
	sum.Calls++
	if ev.Err != nil {
		sum.Errors++
	}
	sum.Changed += ev.Changed
	sum.Dropped += ev.Dropped

	if !r.initialized {
		return
	}

	rec := EventRecord{
		Seq:       r.totalCalls(),
		Operator:  ev.Operator,
		ParentLen: ev.ParentLen,
		ChildLens: ev.ChildLens,
		Changed:   ev.Changed,
		Dropped:   ev.Dropped,
	}
	if ev.Err != nil {
		rec.Error = ev.Err.Error()
	}
	if rec.ChildLens == nil {
		rec.ChildLens = []int{}
	}

	lens := make([]string, len(rec.ChildLens))
	for i, n := range rec.ChildLens {
		lens[i] = strconv.Itoa(n)
	}
	row := []string{
		strconv.Itoa(rec.Seq),
		rec.Operator,
		strconv.Itoa(rec.ParentLen),
		strings.Join(lens, ";"),
		strconv.Itoa(rec.Changed),
		strconv.Itoa(rec.Dropped),
		rec.Error,
	}
	r.keep(r.csvWriter.Write(row))
	r.csvWriter.Flush()
	r.keep(r.csvWriter.Error())

	jsonLine, err := json.Marshal(rec)
	r.keep(err)
	if err == nil {
		_, err = r.jsonFile.Write(append(jsonLine, '\n'))
		r.keep(err)
	}

	if r.console != nil {
		fmt.Fprintf(r.console, "#%-5d %-12s | len %3d -> %-8s | changed %3d | dropped %3d",
			rec.Seq, rec.Operator, rec.ParentLen, strings.Join(lens, ","), rec.Changed, rec.Dropped)
		if rec.Error != "" {
			fmt.Fprintf(r.console, " | error: %s", rec.Error)
		}
		fmt.Fprintln(r.console)
	}
}

// Summary returns per-operator totals sorted by operator name
func (r *Recorder) Summary() []OperatorSummary {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]OperatorSummary, 0, len(r.counts))
	for _, s := range r.counts {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Operator < out[j].Operator
	})
	return out
}

func (r *Recorder) totalCalls() int {
	n := 0
	for _, s := range r.counts {
		n += s.Calls
	}
	return n
}

// keep remembers the first write error so Close can report it
func (r *Recorder) keep(err error) {
	if err != nil && r.writeErr == nil {
		r.writeErr = err
	}
}
