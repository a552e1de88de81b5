package models

type PrincipalVariant string
type Role string
type ApplicationStatus string
type JobType string
type InternshipDuration string

const (
	// Варианты принципала: обычный пользователь платформы и работодатель.
	// Email уникален в рамках варианта, не глобально.
	VariantUser     PrincipalVariant = "user"
	VariantEmployer PrincipalVariant = "employer"

	RoleCandidate    Role = "CANDIDATE"
	RoleOrganisation Role = "ORGANISATION"
	RoleEmployer     Role = "EMPLOYER"

	ApplicationStatusApplied     ApplicationStatus = "APPLIED"
	ApplicationStatusShortlisted ApplicationStatus = "SHORTLISTED"
	ApplicationStatusHired       ApplicationStatus = "HIRED"
	ApplicationStatusRejected    ApplicationStatus = "REJECTED"

	JobTypeInOffice JobType = "in-office"
	JobTypeRemote   JobType = "remote"
	JobTypeHybrid   JobType = "hybrid"

	DurationOneMonth    InternshipDuration = "1-month"
	DurationTwoMonths   InternshipDuration = "2-months"
	DurationThreeMonths InternshipDuration = "3-months"
	DurationSixMonths   InternshipDuration = "6-months"
)

// RolesForVariant возвращает допустимые роли варианта
func RolesForVariant(variant PrincipalVariant) []Role {
	if variant == VariantEmployer {
		return []Role{RoleEmployer}
	}
	return []Role{RoleCandidate, RoleOrganisation}
}
