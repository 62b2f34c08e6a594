package report

//go:generate flatc --go -o ../bindings report.fbs

import (
	"errors"
	"fmt"

	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/signalnine/haikyu-sim/gosim/bindings/haikyu"
	"github.com/signalnine/haikyu-sim/gosim/engine"
	"github.com/signalnine/haikyu-sim/gosim/simulation"
)

// ErrNotReport is returned when a buffer does not carry the report identifier.
var ErrNotReport = errors.New("not a haikyu report buffer")

// EncodeFlatBuffer serializes the run id, seed, metrics and rally logs.
func EncodeFlatBuffer(rep *simulation.Report) []byte {
	builder := flatbuffers.NewBuilder(1024)

	// Children must be built before the tables that reference them.
	keys := rep.Aggregate.Keys()
	metricOffsets := make([]flatbuffers.UOffsetT, len(keys))
	for i, key := range keys {
		keyOffset := builder.CreateString(key)
		haikyu.MetricStart(builder)
		haikyu.MetricAddKey(builder, keyOffset)
		haikyu.MetricAddValue(builder, rep.Aggregate[key])
		metricOffsets[i] = haikyu.MetricEnd(builder)
	}

	logOffsets := make([]flatbuffers.UOffsetT, len(rep.RallyLogs))
	for i := range rep.RallyLogs {
		logOffsets[i] = serializeRallyLog(builder, &rep.RallyLogs[i])
	}

	haikyu.ReportStartMetricsVector(builder, len(metricOffsets))
	for i := len(metricOffsets) - 1; i >= 0; i-- {
		builder.PrependUOffsetT(metricOffsets[i])
	}
	metricsVec := builder.EndVector(len(metricOffsets))

	haikyu.ReportStartRallyLogsVector(builder, len(logOffsets))
	for i := len(logOffsets) - 1; i >= 0; i-- {
		builder.PrependUOffsetT(logOffsets[i])
	}
	logsVec := builder.EndVector(len(logOffsets))

	runID := builder.CreateString(rep.RunID)

	haikyu.ReportStart(builder)
	haikyu.ReportAddRunId(builder, runID)
	haikyu.ReportAddSeed(builder, rep.Seed)
	haikyu.ReportAddNumGames(builder, uint32(rep.Config.NumGames))
	haikyu.ReportAddMetrics(builder, metricsVec)
	haikyu.ReportAddRallyLogs(builder, logsVec)
	root := haikyu.ReportEnd(builder)

	haikyu.FinishReportBuffer(builder, root)
	return builder.FinishedBytes()
}

func serializeRallyLog(builder *flatbuffers.Builder, log *simulation.RallyLog) flatbuffers.UOffsetT {
	server := builder.CreateString(log.Server)
	winner := builder.CreateString(log.Winner)
	reason := builder.CreateString(log.EndReason.String())
	var usedBy, step flatbuffers.UOffsetT
	if log.TwoTouchUsedBy != "" {
		usedBy = builder.CreateString(log.TwoTouchUsedBy)
	}
	if log.TwoTouchStep != nil {
		step = builder.CreateString(log.TwoTouchStep.String())
	}

	success := int8(-1)
	if log.TwoTouchSuccess != nil {
		success = 0
		if *log.TwoTouchSuccess {
			success = 1
		}
	}

	haikyu.RallyLogStart(builder)
	haikyu.RallyLogAddGameId(builder, uint32(log.GameID))
	haikyu.RallyLogAddRallyId(builder, uint32(log.RallyID))
	haikyu.RallyLogAddServer(builder, server)
	haikyu.RallyLogAddCardsPlayed(builder, uint32(log.CardsPlayed))
	haikyu.RallyLogAddWinner(builder, winner)
	haikyu.RallyLogAddEndReason(builder, reason)
	haikyu.RallyLogAddBlockAttempted(builder, log.BlockAttempted)
	haikyu.RallyLogAddBlockSuccess(builder, log.BlockSuccess)
	if usedBy != 0 {
		haikyu.RallyLogAddTwoTouchUsedBy(builder, usedBy)
	}
	if step != 0 {
		haikyu.RallyLogAddTwoTouchStep(builder, step)
	}
	haikyu.RallyLogAddTwoTouchSuccess(builder, success)
	haikyu.RallyLogAddStartHandA(builder, uint32(log.StartHandSizes[simulation.TeamNames[engine.SideA]]))
	haikyu.RallyLogAddStartHandB(builder, uint32(log.StartHandSizes[simulation.TeamNames[engine.SideB]]))
	haikyu.RallyLogAddEndHandA(builder, uint32(log.EndHandSizes[simulation.TeamNames[engine.SideA]]))
	haikyu.RallyLogAddEndHandB(builder, uint32(log.EndHandSizes[simulation.TeamNames[engine.SideB]]))
	haikyu.RallyLogAddReshuffles(builder, uint32(log.Reshuffles))
	return haikyu.RallyLogEnd(builder)
}

// DecodeFlatBuffer reads a buffer written by EncodeFlatBuffer. Only the
// exported fields are filled in: run id, seed, game count, metrics and
// rally logs.
func DecodeFlatBuffer(buf []byte) (rep *simulation.Report, err error) {
	if len(buf) < 8 || !haikyu.ReportBufferHasIdentifier(buf) {
		return nil, ErrNotReport
	}
	// Accessors panic on out-of-range offsets in a corrupt buffer.
	defer func() {
		if r := recover(); r != nil {
			rep, err = nil, fmt.Errorf("decode report: corrupt buffer: %v", r)
		}
	}()

	root := haikyu.GetRootAsReport(buf, 0)
	rep = &simulation.Report{
		RunID:     string(root.RunId()),
		Seed:      root.Seed(),
		Aggregate: make(simulation.Aggregate, root.MetricsLength()),
		RallyLogs: make([]simulation.RallyLog, 0, root.RallyLogsLength()),
	}
	rep.Config.NumGames = int(root.NumGames())
	rep.Config.Seed = &rep.Seed

	var metric haikyu.Metric
	for i := 0; i < root.MetricsLength(); i++ {
		if root.Metrics(&metric, i) {
			rep.Aggregate[string(metric.Key())] = metric.Value()
		}
	}

	var fb haikyu.RallyLog
	for i := 0; i < root.RallyLogsLength(); i++ {
		if !root.RallyLogs(&fb, i) {
			continue
		}
		log, err := deserializeRallyLog(&fb)
		if err != nil {
			return nil, fmt.Errorf("decode report: rally log %d: %w", i, err)
		}
		rep.RallyLogs = append(rep.RallyLogs, log)
	}
	return rep, nil
}

func deserializeRallyLog(fb *haikyu.RallyLog) (simulation.RallyLog, error) {
	var reason engine.EndReason
	if err := reason.UnmarshalText(fb.EndReason()); err != nil {
		return simulation.RallyLog{}, err
	}
	log := simulation.RallyLog{
		GameID:         int(fb.GameId()),
		RallyID:        int(fb.RallyId()),
		Server:         string(fb.Server()),
		CardsPlayed:    int(fb.CardsPlayed()),
		Winner:         string(fb.Winner()),
		EndReason:      reason,
		BlockAttempted: fb.BlockAttempted(),
		BlockSuccess:   fb.BlockSuccess(),
		TwoTouchUsedBy: string(fb.TwoTouchUsedBy()),
		StartHandSizes: handSizes(fb.StartHandA(), fb.StartHandB()),
		EndHandSizes:   handSizes(fb.EndHandA(), fb.EndHandB()),
		Reshuffles:     int(fb.Reshuffles()),
	}
	if text := fb.TwoTouchStep(); len(text) > 0 {
		var step engine.Step
		if err := step.UnmarshalText(text); err != nil {
			return simulation.RallyLog{}, err
		}
		log.TwoTouchStep = &step
	}
	if s := fb.TwoTouchSuccess(); s >= 0 {
		won := s == 1
		log.TwoTouchSuccess = &won
	}
	return log, nil
}

func handSizes(a, b uint32) map[string]int {
	return map[string]int{
		simulation.TeamNames[engine.SideA]: int(a),
		simulation.TeamNames[engine.SideB]: int(b),
	}
}
