package workspace

// Protocol distinguishes the two workspace protocol families a session
// can be bound through. The ext protocol additionally supports
// assigning a workspace to an output group; cosmic does not.
type Protocol int

const (
	ProtocolCosmic Protocol = iota
	ProtocolExt
)

func (p Protocol) String() string {
	if p == ProtocolCosmic {
		return "cosmic"
	}
	return "ext"
}

// OpKind is the request vocabulary both workspace protocols share,
// plus the ext-only assign.
type OpKind int

const (
	OpCreateWorkspace OpKind = iota
	OpActivate
	OpDeactivate
	OpRemove
	OpAssign
)

func (k OpKind) String() string {
	switch k {
	case OpCreateWorkspace:
		return "create_workspace"
	case OpActivate:
		return "activate"
	case OpDeactivate:
		return "deactivate"
	case OpRemove:
		return "remove"
	case OpAssign:
		return "assign"
	default:
		return "invalid"
	}
}

// Op is one queued workspace request: the kind, the protocol object it
// was issued on (a workspace resource, or the group resource for
// create/assign) and its payload (the new workspace's name for create,
// the target group for assign).
type Op struct {
	Kind    OpKind
	Source  string
	Payload string
}

// Session is the transaction context shared by every resource derived
// from one manager_resource bind: requests queue here and take effect
// only on Commit, in issue order. Destroying any involved protocol
// object invalidates the ops that reference it.
type Session struct {
	Protocol Protocol
	pending  []Op
}

func NewSession(p Protocol) *Session {
	return &Session{Protocol: p}
}

// Queue appends op to the session. Assign is an ext-only request; a
// cosmic client issuing it is a protocol error, reported to the caller
// so it can post the error on the offending resource.
func (s *Session) Queue(op Op) bool {
	if op.Kind == OpAssign && s.Protocol != ProtocolExt {
		return false
	}
	s.pending = append(s.pending, op)
	return true
}

// InvalidateSource silently drops every queued op that references the
// destroyed protocol object; the client gets no error for ops that can
// no longer apply.
func (s *Session) InvalidateSource(source string) {
	kept := s.pending[:0]
	for _, op := range s.pending {
		if op.Source != source {
			kept = append(kept, op)
		}
	}
	s.pending = kept
}

// Pending returns how many ops are queued, for tests and for the
// protocol binding's debug introspection.
func (s *Session) Pending() int { return len(s.pending) }

// Commit drains the queue atomically into compositor-side effects on m,
// in issue order. An op the manager refuses emits no event: activating
// an unknown workspace, or removing an unknown or the last workspace.
func (s *Session) Commit(m *Manager) []TransactionEvent {
	ops := s.pending
	s.pending = nil

	var events []TransactionEvent
	for _, op := range ops {
		switch op.Kind {
		case OpCreateWorkspace:
			m.Create(op.Payload)
			events = append(events, TransactionEvent{Workspace: op.Payload, Kind: OpCreateWorkspace})
		case OpActivate:
			if _, ok := m.byName[op.Source]; ok {
				m.active = op.Source
				events = append(events, TransactionEvent{Workspace: op.Source, Kind: OpActivate, Activated: true})
			}
		case OpDeactivate:
			events = append(events, TransactionEvent{Workspace: op.Source, Kind: OpDeactivate})
		case OpRemove:
			if m.remove(op.Source) {
				events = append(events, TransactionEvent{Workspace: op.Source, Kind: OpRemove})
			}
		case OpAssign:
			events = append(events, TransactionEvent{Workspace: op.Source, Kind: OpAssign, Group: op.Payload})
		}
	}
	return events
}
