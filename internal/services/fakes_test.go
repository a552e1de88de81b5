package services

import (
	"strconv"
	"time"

	"repogenesis_backend/internal/email"
	"repogenesis_backend/internal/models"
	"repogenesis_backend/internal/repositories"

	"gorm.io/gorm"
)

// Фейки репозиториев для тестов сервисного слоя.
// Аргумент db игнорируется, состояние живет в памяти.

type fakePrincipalRepo struct {
	byID   map[string]*models.Principal
	nextID int
}

func newFakePrincipalRepo() *fakePrincipalRepo {
	return &fakePrincipalRepo{byID: make(map[string]*models.Principal)}
}

func (r *fakePrincipalRepo) FindByID(_ *gorm.DB, id string) (*models.Principal, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, repositories.ErrPrincipalNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *fakePrincipalRepo) FindByEmail(_ *gorm.DB, variant models.PrincipalVariant, email string) (*models.Principal, error) {
	for _, p := range r.byID {
		if p.Variant == variant && p.Email == email {
			clone := *p
			return &clone, nil
		}
	}
	return nil, repositories.ErrPrincipalNotFound
}

func (r *fakePrincipalRepo) Create(_ *gorm.DB, principal *models.Principal) error {
	for _, p := range r.byID {
		if p.Variant == principal.Variant && p.Email == principal.Email {
			return repositories.ErrPrincipalAlreadyExists
		}
	}
	r.nextID++
	principal.ID = "principal-" + strconv.Itoa(r.nextID)
	clone := *principal
	r.byID[principal.ID] = &clone
	return nil
}

func (r *fakePrincipalRepo) UpdateProfile(_ *gorm.DB, principal *models.Principal) error {
	stored, ok := r.byID[principal.ID]
	if !ok {
		return repositories.ErrPrincipalNotFound
	}
	stored.FirstName = principal.FirstName
	stored.LastName = principal.LastName
	stored.Phone = principal.Phone
	stored.Organization = principal.Organization
	return nil
}

func (r *fakePrincipalRepo) UpdatePassword(_ *gorm.DB, principalID, passwordHash string) error {
	stored, ok := r.byID[principalID]
	if !ok {
		return repositories.ErrPrincipalNotFound
	}
	stored.PasswordHash = passwordHash
	return nil
}

func (r *fakePrincipalRepo) MarkVerified(_ *gorm.DB, principalID string, at time.Time) error {
	stored, ok := r.byID[principalID]
	if !ok {
		return repositories.ErrPrincipalNotFound
	}
	if stored.EmailVerifiedAt != nil {
		return repositories.ErrAlreadyVerified
	}
	stored.EmailVerifiedAt = &at
	return nil
}

type fakeVerificationTokenRepo struct {
	byToken map[string]*models.EmailVerificationToken
	nextID  int
}

func newFakeVerificationTokenRepo() *fakeVerificationTokenRepo {
	return &fakeVerificationTokenRepo{byToken: make(map[string]*models.EmailVerificationToken)}
}

func (r *fakeVerificationTokenRepo) Replace(_ *gorm.DB, token *models.EmailVerificationToken) error {
	for value, stored := range r.byToken {
		if stored.PrincipalID == token.PrincipalID {
			delete(r.byToken, value)
		}
	}
	r.nextID++
	token.ID = "vt-" + strconv.Itoa(r.nextID)
	clone := *token
	r.byToken[token.Token] = &clone
	return nil
}

func (r *fakeVerificationTokenRepo) FindByToken(_ *gorm.DB, token string) (*models.EmailVerificationToken, error) {
	stored, ok := r.byToken[token]
	if !ok {
		return nil, repositories.ErrTokenNotFound
	}
	clone := *stored
	return &clone, nil
}

type fakeResetTokenRepo struct {
	byToken map[string]*models.PasswordResetToken
	nextID  int
}

func newFakeResetTokenRepo() *fakeResetTokenRepo {
	return &fakeResetTokenRepo{byToken: make(map[string]*models.PasswordResetToken)}
}

func (r *fakeResetTokenRepo) Replace(_ *gorm.DB, token *models.PasswordResetToken) error {
	for value, stored := range r.byToken {
		if stored.PrincipalID == token.PrincipalID {
			delete(r.byToken, value)
		}
	}
	r.nextID++
	token.ID = "rt-" + strconv.Itoa(r.nextID)
	clone := *token
	r.byToken[token.Token] = &clone
	return nil
}

func (r *fakeResetTokenRepo) FindValidByToken(_ *gorm.DB, token string, now time.Time) (*models.PasswordResetToken, error) {
	stored, ok := r.byToken[token]
	if !ok || stored.IsUsed || !stored.ExpireAt.After(now) {
		return nil, repositories.ErrTokenNotFound
	}
	clone := *stored
	return &clone, nil
}

func (r *fakeResetTokenRepo) MarkUsed(_ *gorm.DB, id string) error {
	for _, stored := range r.byToken {
		if stored.ID == id {
			stored.IsUsed = true
			return nil
		}
	}
	return repositories.ErrTokenNotFound
}

// fakeMailer запоминает отправленные ссылки
type fakeMailer struct {
	verificationLinks map[string]string
	resetLinks        map[string]string
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{
		verificationLinks: make(map[string]string),
		resetLinks:        make(map[string]string),
	}
}

func (m *fakeMailer) Send(_ *email.Email) error { return nil }

func (m *fakeMailer) SendWithTemplate(_ string, _ email.TemplateData, _ *email.Email) error {
	return nil
}

func (m *fakeMailer) SendVerification(to string, verifyLink string) error {
	m.verificationLinks[to] = verifyLink
	return nil
}

func (m *fakeMailer) SendPasswordReset(to string, resetLink string) error {
	m.resetLinks[to] = resetLink
	return nil
}

func (m *fakeMailer) Validate() error { return nil }
func (m *fakeMailer) Close() error    { return nil }

type fakeJobRepo struct {
	jobs   map[string]*models.Job
	nextID int
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[string]*models.Job)}
}

func (r *fakeJobRepo) Create(_ *gorm.DB, job *models.Job) error {
	r.nextID++
	job.ID = "job-" + strconv.Itoa(r.nextID)
	if job.CreatedAt.IsZero() {
		job.CreatedAt = time.Now()
	}
	clone := *job
	r.jobs[job.ID] = &clone
	return nil
}

func (r *fakeJobRepo) FindActiveOwned(_ *gorm.DB, id, organisationID string) (*models.Job, error) {
	job, ok := r.jobs[id]
	if !ok || job.OrganisationID != organisationID || !job.IsActive {
		return nil, repositories.ErrPostingNotFound
	}
	clone := *job
	return &clone, nil
}

func (r *fakeJobRepo) FindOwned(_ *gorm.DB, id, organisationID string) (*models.Job, error) {
	job, ok := r.jobs[id]
	if !ok || job.OrganisationID != organisationID {
		return nil, repositories.ErrPostingNotFound
	}
	clone := *job
	return &clone, nil
}

func (r *fakeJobRepo) ListActiveByOrganisation(_ *gorm.DB, organisationID string) ([]models.Job, error) {
	var out []models.Job
	for _, job := range r.jobs {
		if job.OrganisationID == organisationID && job.IsActive {
			out = append(out, *job)
		}
	}
	return out, nil
}

func (r *fakeJobRepo) Update(_ *gorm.DB, job *models.Job) error {
	stored, ok := r.jobs[job.ID]
	if !ok || stored.OrganisationID != job.OrganisationID {
		return repositories.ErrPostingNotFound
	}
	createdAt := stored.CreatedAt
	isActive := stored.IsActive
	clone := *job
	clone.CreatedAt = createdAt
	clone.IsActive = isActive
	r.jobs[job.ID] = &clone
	return nil
}

func (r *fakeJobRepo) Deactivate(_ *gorm.DB, id, organisationID string) error {
	stored, ok := r.jobs[id]
	if !ok || stored.OrganisationID != organisationID {
		return repositories.ErrPostingNotFound
	}
	stored.IsActive = false
	return nil
}

type fakeInternshipRepo struct {
	internships map[string]*models.Internship
	nextID      int
}

func newFakeInternshipRepo() *fakeInternshipRepo {
	return &fakeInternshipRepo{internships: make(map[string]*models.Internship)}
}

func (r *fakeInternshipRepo) Create(_ *gorm.DB, internship *models.Internship) error {
	r.nextID++
	internship.ID = "internship-" + strconv.Itoa(r.nextID)
	if internship.CreatedAt.IsZero() {
		internship.CreatedAt = time.Now()
	}
	clone := *internship
	r.internships[internship.ID] = &clone
	return nil
}

func (r *fakeInternshipRepo) FindActiveOwned(_ *gorm.DB, id, organisationID string) (*models.Internship, error) {
	internship, ok := r.internships[id]
	if !ok || internship.OrganisationID != organisationID || !internship.IsActive {
		return nil, repositories.ErrPostingNotFound
	}
	clone := *internship
	return &clone, nil
}

func (r *fakeInternshipRepo) FindOwned(_ *gorm.DB, id, organisationID string) (*models.Internship, error) {
	internship, ok := r.internships[id]
	if !ok || internship.OrganisationID != organisationID {
		return nil, repositories.ErrPostingNotFound
	}
	clone := *internship
	return &clone, nil
}

func (r *fakeInternshipRepo) ListActiveByOrganisation(_ *gorm.DB, organisationID string) ([]models.Internship, error) {
	var out []models.Internship
	for _, internship := range r.internships {
		if internship.OrganisationID == organisationID && internship.IsActive {
			out = append(out, *internship)
		}
	}
	return out, nil
}

func (r *fakeInternshipRepo) Update(_ *gorm.DB, internship *models.Internship) error {
	stored, ok := r.internships[internship.ID]
	if !ok || stored.OrganisationID != internship.OrganisationID {
		return repositories.ErrPostingNotFound
	}
	createdAt := stored.CreatedAt
	isActive := stored.IsActive
	clone := *internship
	clone.CreatedAt = createdAt
	clone.IsActive = isActive
	r.internships[internship.ID] = &clone
	return nil
}

func (r *fakeInternshipRepo) Deactivate(_ *gorm.DB, id, organisationID string) error {
	stored, ok := r.internships[id]
	if !ok || stored.OrganisationID != organisationID {
		return repositories.ErrPostingNotFound
	}
	stored.IsActive = false
	return nil
}

type fakeApplicationRepo struct {
	jobCounts        map[string]repositories.ApplicationCounts
	internshipCounts map[string]repositories.ApplicationCounts
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{
		jobCounts:        make(map[string]repositories.ApplicationCounts),
		internshipCounts: make(map[string]repositories.ApplicationCounts),
	}
}

func (r *fakeApplicationRepo) Create(_ *gorm.DB, _ *models.Application) error { return nil }

func (r *fakeApplicationRepo) CountsForJobs(_ *gorm.DB, jobIDs []string) (map[string]repositories.ApplicationCounts, error) {
	out := make(map[string]repositories.ApplicationCounts)
	for _, id := range jobIDs {
		if counts, ok := r.jobCounts[id]; ok {
			out[id] = counts
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) CountsForInternships(_ *gorm.DB, internshipIDs []string) (map[string]repositories.ApplicationCounts, error) {
	out := make(map[string]repositories.ApplicationCounts)
	for _, id := range internshipIDs {
		if counts, ok := r.internshipCounts[id]; ok {
			out[id] = counts
		}
	}
	return out, nil
}
