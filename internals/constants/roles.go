package constants

// User roles (users.role)
const (
	RoleSuperAdmin = "Super Admin"
	RoleAdmin      = "Admin"
	RoleMember     = "Member"
)

// Row status values shared across resources
const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

// Notice status
const (
	NoticePublished = "Published"
	NoticeDraft     = "Draft"
)

// Event status
const (
	EventUpcoming  = "Upcoming"
	EventOngoing   = "Ongoing"
	EventCompleted = "Completed"
	EventCancelled = "Cancelled"
)

// Banner status (lowercase by convention of the public site)
const (
	BannerActive   = "active"
	BannerInactive = "inactive"
)

// Committee types, ranked for display
const (
	CommitteeFounder   = "Founder"
	CommitteeExecutive = "Executive"
	CommitteeAssociate = "Associate"
)

// Membership application status
const (
	ApplicationPending  = "pending"
	ApplicationVerified = "verified"
	ApplicationRejected = "rejected"
)

// ==========================
// Grouped role slices
// ==========================
var (
	AdminAndAbove = []string{
		RoleSuperAdmin,
		RoleAdmin,
	}

	SuperAdminOnly = []string{
		RoleSuperAdmin,
	}
)
