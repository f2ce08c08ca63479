package domain

type ScheduleType string

const (
	ScheduleExtensive ScheduleType = "extensive"
	ScheduleIntensive ScheduleType = "intensive"
)

// ValidScheduleTypes is the canonical set of accepted schedule type strings.
var ValidScheduleTypes = map[string]bool{
	string(ScheduleExtensive): true,
	string(ScheduleIntensive): true,
}

type TaskType string

const (
	TaskStudy      TaskType = "study"
	TaskSimulation TaskType = "simulation"
	TaskCorrection TaskType = "correction"
	TaskGaps       TaskType = "gaps"
	TaskRevision   TaskType = "revision"
	TaskWriting    TaskType = "writing"
	TaskFree       TaskType = "free"
)

type SubjectCategory string

const (
	CategoryHumanities    SubjectCategory = "humanities"
	CategoryExactSciences SubjectCategory = "exact_sciences"
)

// Subject names as they appear in the ENEM catalogs.
const (
	SubjectMath       = "Matemática"
	SubjectPhysics    = "Física"
	SubjectChemistry  = "Química"
	SubjectBiology    = "Biologia"
	SubjectHistory    = "História"
	SubjectGeography  = "Geografia"
	SubjectPhilosophy = "Filosofia"
	SubjectSociology  = "Sociologia"
	SubjectLanguages  = "Linguagens"
)

type UnscheduledReason string

const (
	ReasonDeadline       UnscheduledReason = "deadline"
	ReasonActivationGate UnscheduledReason = "activation_gate"
	ReasonSafetyCeiling  UnscheduledReason = "safety_ceiling"
)
