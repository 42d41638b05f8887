package user

import "slices"

type Action string

const (
	ActionFieldList     Action = "field:list"
	ActionFieldCreate   Action = "field:create"
	ActionFieldUpdate   Action = "field:update"
	ActionFieldDelete   Action = "field:delete"
	ActionBookingCreate Action = "booking:create"
	ActionBookingRead   Action = "booking:read"
	ActionBookingDelete Action = "booking:delete"
)

type Scope int

const (
	ScopeNone Scope = iota
	ScopeOwn
	ScopeAll
)

func (s Scope) String() string {
	switch s {
	case ScopeOwn:
		return "own"
	case ScopeAll:
		return "all"
	default:
		return "none"
	}
}

// Relation names how an actor has to be tied to a resource for ScopeOwn to apply.
type Relation string

const (
	RelationBooker     Relation = "booker"
	RelationFieldOwner Relation = "field_owner"
)

// Relations lists the relations an actor actually has with one resource.
type Relations map[Relation]bool

// Grant is what a role may do for one action. With ScopeOwn, any relation in Via is enough.
type Grant struct {
	Scope Scope
	Via   []Relation
}

func (g Grant) Allows(rel Relations) bool {
	switch g.Scope {
	case ScopeAll:
		return true
	case ScopeOwn:
		for _, r := range g.Via {
			if rel[r] {
				return true
			}
		}
		return false
	default:
		return false
	}
}

func (g Grant) Through(r Relation) bool {
	return slices.Contains(g.Via, r)
}

type grantKey struct {
	role   Role
	action Action
}

var (
	viaBooker     = []Relation{RelationBooker}
	viaFieldOwner = []Relation{RelationFieldOwner}
	viaEither     = []Relation{RelationBooker, RelationFieldOwner}
)

var grants = map[grantKey]Grant{
	{RoleGuest, ActionFieldList}: {Scope: ScopeAll},
	{RoleUser, ActionFieldList}:  {Scope: ScopeAll},
	{RoleOwner, ActionFieldList}: {Scope: ScopeOwn, Via: viaFieldOwner},
	{RoleAdmin, ActionFieldList}: {Scope: ScopeAll},

	{RoleOwner, ActionFieldCreate}: {Scope: ScopeAll},
	{RoleOwner, ActionFieldUpdate}: {Scope: ScopeOwn, Via: viaFieldOwner},
	{RoleOwner, ActionFieldDelete}: {Scope: ScopeOwn, Via: viaFieldOwner},

	{RoleUser, ActionBookingCreate}:  {Scope: ScopeAll},
	{RoleOwner, ActionBookingCreate}: {Scope: ScopeAll},
	{RoleAdmin, ActionBookingCreate}: {Scope: ScopeAll},

	{RoleUser, ActionBookingRead}:  {Scope: ScopeOwn, Via: viaBooker},
	{RoleOwner, ActionBookingRead}: {Scope: ScopeOwn, Via: viaEither},
	{RoleAdmin, ActionBookingRead}: {Scope: ScopeAll},

	{RoleUser, ActionBookingDelete}:  {Scope: ScopeOwn, Via: viaBooker},
	{RoleOwner, ActionBookingDelete}: {Scope: ScopeOwn, Via: viaEither},
	{RoleAdmin, ActionBookingDelete}: {Scope: ScopeAll},
}

// GrantFor looks up what role may do for action. Unlisted pairs get ScopeNone.
func GrantFor(role Role, action Action) Grant {
	return grants[grantKey{role: role, action: action}]
}

func (a Actor) Grant(action Action) Grant {
	return GrantFor(a.Role, action)
}

func (a Actor) Can(action Action, rel Relations) bool {
	return a.Grant(action).Allows(rel)
}
