package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/signalnine/haikyu-sim/gosim/simulation"
)

// WriteText renders the metric table and the first sample rally logs. A
// non-positive sample uses DefaultSample.
func WriteText(w io.Writer, rep *simulation.Report, sample int) error {
	if sample <= 0 {
		sample = DefaultSample
	}

	header := fmt.Sprintf("Run %s  seed %d  games %d  rallies %d\n",
		rep.RunID, rep.Seed, len(rep.Games), rep.Totals.Rallies())
	metrics, err := metricsTable(rep)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, header+"\n"+metrics+"\n"); err != nil {
		return err
	}

	if len(rep.RallyLogs) == 0 {
		return nil
	}
	logs, err := rallyTable(rep.RallyLogs[:min(sample, len(rep.RallyLogs))])
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n"+logs+"\n")
	return err
}

func metricsTable(rep *simulation.Report) (string, error) {
	data := pterm.TableData{{"Metric", "Value"}}
	for _, key := range rep.Aggregate.Keys() {
		data = append(data, []string{key, strconv.FormatFloat(rep.Aggregate[key], 'f', 3, 64)})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}

func rallyTable(logs []simulation.RallyLog) (string, error) {
	data := pterm.TableData{{
		"Game", "Rally", "Server", "Cards", "Winner", "Reason",
		"Block", "Two-touch", "Hands A/B", "Reshuffles",
	}}
	for _, log := range logs {
		data = append(data, []string{
			strconv.Itoa(log.GameID),
			strconv.Itoa(log.RallyID),
			log.Server,
			strconv.Itoa(log.CardsPlayed),
			log.Winner,
			log.EndReason.String(),
			blockLabel(log),
			twoTouchLabel(log),
			fmt.Sprintf("%d/%d -> %d/%d",
				log.StartHandSizes["A"], log.StartHandSizes["B"],
				log.EndHandSizes["A"], log.EndHandSizes["B"]),
			strconv.Itoa(log.Reshuffles),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}

func blockLabel(log simulation.RallyLog) string {
	switch {
	case log.BlockSuccess:
		return "blocked"
	case log.BlockAttempted:
		return "tried"
	}
	return "-"
}

func twoTouchLabel(log simulation.RallyLog) string {
	if log.TwoTouchUsedBy == "" {
		return "-"
	}
	label := log.TwoTouchUsedBy
	if log.TwoTouchStep != nil {
		label += "@" + log.TwoTouchStep.String()
	}
	if log.TwoTouchSuccess != nil && *log.TwoTouchSuccess {
		label += " won"
	}
	return label
}
