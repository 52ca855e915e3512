package session

// Role determines which job fetch strategy and which routing gates apply.
type Role string

const (
	RoleOwner       Role = "owner"
	RoleEmployee    Role = "employee"
	RoleIndependent Role = "independent"
)

// NormalizeRole maps any stored value onto the fixed role set, defaulting to
// independent when the value is unknown.
func NormalizeRole(raw string) Role {
	switch Role(raw) {
	case RoleOwner, RoleEmployee, RoleIndependent:
		return Role(raw)
	default:
		return RoleIndependent
	}
}

// RoutingTarget is a named destination, not a URL. The screen layer owns the
// mapping to actual navigation.
type RoutingTarget string

const (
	TargetLogin         RoutingTarget = "LOGIN"
	TargetCreateCompany RoutingTarget = "CREATE_COMPANY"
	TargetJoinCompany   RoutingTarget = "JOIN_COMPANY"
	TargetProfileSetup  RoutingTarget = "PROFILE_SETUP"
	TargetHome          RoutingTarget = "HOME"
)

// Principal is the authenticated identity handed over by the external
// identity provider. A nil principal means nobody is signed in.
type Principal struct {
	UID   string
	Email string
}

// ResolvedSession is the reconciled identity the rest of the system runs on.
type ResolvedSession struct {
	UID       string `json:"uid"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Role      Role   `json:"role"`
	CompanyID string `json:"company_id"`
}

// CachedSession is the non-authoritative copy kept in the local session
// cache. It exists for fast first paint and as a fallback when the remote
// profile store is unreachable; it must never drive authorization decisions.
type CachedSession struct {
	UID       string `json:"uid"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	CompanyID string `json:"company_id"`
}
