package api

// Step names a page of the wizard
type Step string

const (
	StepPark       Step = "park"
	StepReasons    Step = "reasons"
	StepSolutions  Step = "solutions"
	StepVariants   Step = "variants"
	StepGovernance Step = "governance"
	StepSummary    Step = "summary"
)

// Steps lists the wizard pages in the order a user walks through them
var Steps = []Step{
	StepPark,
	StepReasons,
	StepSolutions,
	StepVariants,
	StepGovernance,
	StepSummary,
}
