package domain

// Mode tags the pipeline that produced a Result.
type Mode string

const (
	ModeStandard       Mode = "STANDARD"
	ModeAcademicReplay Mode = "ACADEMIC_REPLAY"
)

// Iteration logs of one phase in the standard shape.
// A non-nil PhaseData means the collection was present, even if empty.
type PhaseData struct {
	IterationLogs []IterationRecord
}

// Pre-computed costs shipped by the academic replay pipeline.
type CostTotals struct {
	TotalFixedCost    float64
	TotalVariableCost float64
	TotalCost         float64
}

// Dataset metadata embedded in academic replay results.
type Dataset struct {
	Depot *Depot
}

// Raw pipeline result in either shape.
//
// Standard results fill ACSData/RVNDData; academic replay results fill the flat
// IterationLogs (nil when absent), Costs and Dataset. Routes are common to both.
type Result struct {
	Mode          Mode
	ACSData       *PhaseData
	RVNDData      *PhaseData
	IterationLogs []IterationRecord
	Routes        []RouteRecord
	Costs         *CostTotals
	Dataset       *Dataset
}

func (r *Result) IsAcademic() bool {
	return r != nil && r.Mode == ModeAcademicReplay
}
