package domain

// SourceState mirrors the processing state reported by the external file
// service. It is polled, never owned locally.
type SourceState string

const (
	StateSubmitted  SourceState = "SUBMITTED"
	StateProcessing SourceState = "PROCESSING"
	StateActive     SourceState = "ACTIVE"
	StateFailed     SourceState = "FAILED"
)

// Terminal reports whether the state can no longer advance.
func (s SourceState) Terminal() bool {
	return s == StateActive || s == StateFailed
}

// KnowledgeSource is the single reference document as the external service
// sees it. Exactly one exists per process; its state only moves forward.
type KnowledgeSource struct {
	Name        string // opaque resource name assigned by the service
	URI         string
	MIMEType    string
	DisplayName string
	State       SourceState
}

// Ready reports whether the source can be used for grounding.
func (k *KnowledgeSource) Ready() bool {
	return k != nil && k.State == StateActive
}

type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Turn is one utterance in a conversation seed. Source is set only on the
// first turn of a seed, where the reference document is attached.
type Turn struct {
	Role   Role
	Text   string
	Source *KnowledgeSource
}
