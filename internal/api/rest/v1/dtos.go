package v1

import (
	"errors"
	"fmt"
	"time"

	"github.com/StianAK82/regnskapsky/internal/domain/aml"
	"github.com/StianAK82/regnskapsky/internal/domain/audit"
	"github.com/StianAK82/regnskapsky/internal/domain/clients"
	"github.com/StianAK82/regnskapsky/internal/domain/documents"
	"github.com/StianAK82/regnskapsky/internal/domain/flags"
	"github.com/StianAK82/regnskapsky/internal/domain/licensing"
	"github.com/StianAK82/regnskapsky/internal/domain/notifications"
	"github.com/StianAK82/regnskapsky/internal/domain/tasks"
	"github.com/StianAK82/regnskapsky/internal/domain/timetracking"
	"github.com/StianAK82/regnskapsky/internal/domain/users"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the error payload returned by all endpoints.
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse is the confirmation payload for operations without a body.
type InfoResponse struct {
	Message string `json:"message"`
}

func validateRequest(request interface{}) error {
	validate := validator.New()

	err := validate.Struct(request)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// LoginRequest carries the credentials for password login.
type LoginRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	TokenName string `json:"tokenName" validate:"omitempty,max=255"`
}

// Validate checks the login request fields.
func (r *LoginRequest) Validate() error {
	return validateRequest(r)
}

// IssueTokenRequest carries the parameters for issuing an extra API token.
type IssueTokenRequest struct {
	UserID string `json:"userId" validate:"required,uuid4"`
	Name   string `json:"name" validate:"required,min=1,max=255"`
}

// Validate checks the token request fields.
func (r *IssueTokenRequest) Validate() error {
	return validateRequest(r)
}

// CreateUserRequest carries the fields for adding a user to the license.
type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Name     string `json:"name" validate:"required,min=1,max=255"`
	Role     string `json:"role" validate:"required,oneof=admin employee"`
	Password string `json:"password" validate:"required,min=8"`
}

// Validate checks the user request fields.
func (r *CreateUserRequest) Validate() error {
	return validateRequest(r)
}

// SetUserActiveRequest toggles a user's active state.
type SetUserActiveRequest struct {
	Active *bool `json:"active" validate:"required"`
}

// Validate checks that the active field is present.
func (r *SetUserActiveRequest) Validate() error {
	return validateRequest(r)
}

// UpdatePlanRequest changes the license plan and seat limit.
type UpdatePlanRequest struct {
	Plan      string `json:"plan" validate:"required,oneof=basic standard premium"`
	SeatLimit int    `json:"seatLimit" validate:"required,min=1"`
}

// Validate checks the plan request fields.
func (r *UpdatePlanRequest) Validate() error {
	return validateRequest(r)
}

// SetLicenseStatusRequest suspends, reactivates or cancels the license.
type SetLicenseStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active suspended cancelled"`
}

// Validate checks the status request fields.
func (r *SetLicenseStatusRequest) Validate() error {
	return validateRequest(r)
}

// UpsertClientRequest carries the writable client fields. Status is only
// honoured on update.
type UpsertClientRequest struct {
	Name              string  `json:"name" validate:"required,min=1,max=255"`
	OrgNumber         string  `json:"orgNumber" validate:"required,len=9,numeric"`
	ContactEmail      string  `json:"contactEmail" validate:"omitempty,email,max=255"`
	ContactPhone      string  `json:"contactPhone" validate:"omitempty,max=32"`
	AccountingSystem  string  `json:"accountingSystem" validate:"omitempty,oneof=none fiken tripletex"`
	ResponsibleUserID *string `json:"responsibleUserId" validate:"omitempty,uuid4"`
	Status            string  `json:"status" validate:"omitempty,oneof=active archived"`
	Notes             string  `json:"notes" validate:"max=4000"`
}

// Validate checks the client request fields. The org number checksum is
// verified again by the entity before persisting.
func (r *UpsertClientRequest) Validate() error {
	return validateRequest(r)
}

// CreateTaskRequest carries the fields for a new task. Checklist labels are
// created as open items in the given order.
type CreateTaskRequest struct {
	ClientID       string     `json:"clientId" validate:"required,uuid4"`
	Title          string     `json:"title" validate:"required,min=1,max=255"`
	Description    string     `json:"description" validate:"max=4000"`
	AssigneeID     *string    `json:"assigneeId" validate:"omitempty,uuid4"`
	Priority       string     `json:"priority" validate:"omitempty,oneof=low medium high"`
	DueDate        *time.Time `json:"dueDate"`
	RecurrenceRule string     `json:"recurrenceRule" validate:"omitempty,oneof=none monthly quarterly yearly"`
	Checklist      []string   `json:"checklist" validate:"omitempty,dive,min=1,max=255"`
}

// Validate checks the task request fields.
func (r *CreateTaskRequest) Validate() error {
	return validateRequest(r)
}

// UpdateTaskRequest carries the mutable task fields. Status cannot be set to
// done here; completion goes through the complete endpoint.
type UpdateTaskRequest struct {
	Title          string     `json:"title" validate:"required,min=1,max=255"`
	Description    string     `json:"description" validate:"max=4000"`
	AssigneeID     *string    `json:"assigneeId" validate:"omitempty,uuid4"`
	Status         string     `json:"status" validate:"required,oneof=open in_progress done cancelled"`
	Priority       string     `json:"priority" validate:"required,oneof=low medium high"`
	DueDate        *time.Time `json:"dueDate"`
	RecurrenceRule string     `json:"recurrenceRule" validate:"required,oneof=none monthly quarterly yearly"`
}

// Validate checks the task update fields.
func (r *UpdateTaskRequest) Validate() error {
	return validateRequest(r)
}

// AddChecklistItemRequest appends one checklist item.
type AddChecklistItemRequest struct {
	Label string `json:"label" validate:"required,min=1,max=255"`
}

// Validate checks the checklist item label.
func (r *AddChecklistItemRequest) Validate() error {
	return validateRequest(r)
}

// ToggleChecklistItemRequest sets an item's done state.
type ToggleChecklistItemRequest struct {
	Done *bool `json:"done" validate:"required"`
}

// Validate checks that the done field is present.
func (r *ToggleChecklistItemRequest) Validate() error {
	return validateRequest(r)
}

// TimeEntryRequest carries the writable time entry fields.
type TimeEntryRequest struct {
	ClientID    string    `json:"clientId" validate:"required,uuid4"`
	TaskID      *string   `json:"taskId" validate:"omitempty,uuid4"`
	Date        time.Time `json:"date" validate:"required"`
	Minutes     int       `json:"minutes" validate:"required,min=1,max=1440"`
	Billable    bool      `json:"billable"`
	Description string    `json:"description" validate:"max=1000"`
}

// Validate checks the time entry request fields.
func (r *TimeEntryRequest) Validate() error {
	return validateRequest(r)
}

// AssessmentRequest carries the factor scores of an AML review.
type AssessmentRequest struct {
	GeographyRisk    int  `json:"geographyRisk" validate:"required,min=1,max=5"`
	IndustryRisk     int  `json:"industryRisk" validate:"required,min=1,max=5"`
	OwnershipRisk    int  `json:"ownershipRisk" validate:"required,min=1,max=5"`
	TransactionRisk  int  `json:"transactionRisk" validate:"required,min=1,max=5"`
	PepConfirmed     bool `json:"pepConfirmed"`
	IdentityVerified bool `json:"identityVerified"`
}

// Validate checks the factor score ranges.
func (r *AssessmentRequest) Validate() error {
	return validateRequest(r)
}

// SetFlagRequest upserts a license-scoped feature flag.
type SetFlagRequest struct {
	Enabled     *bool  `json:"enabled" validate:"required"`
	Description string `json:"description" validate:"max=1000"`
}

// Validate checks that the enabled field is present.
func (r *SetFlagRequest) Validate() error {
	return validateRequest(r)
}

// RenderLetterRequest carries the engagement terms for a new letter version.
type RenderLetterRequest struct {
	ServiceScope    []string  `json:"serviceScope" validate:"required,min=1,dive,min=1,max=255"`
	HourlyRateNOK   int       `json:"hourlyRateNok" validate:"required,min=1"`
	PaymentDays     int       `json:"paymentDays" validate:"required,min=1,max=90"`
	StartDate       time.Time `json:"startDate" validate:"required"`
	ResponsibleName string    `json:"responsibleName" validate:"required,min=1,max=255"`
}

// Validate checks the letter terms.
func (r *RenderLetterRequest) Validate() error {
	return validateRequest(r)
}

// ClientResponse mirrors the client entity on the wire.
type ClientResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	OrgNumber         string    `json:"orgNumber"`
	ContactEmail      string    `json:"contactEmail,omitempty"`
	ContactPhone      string    `json:"contactPhone,omitempty"`
	AccountingSystem  string    `json:"accountingSystem"`
	ExternalRef       *string   `json:"externalRef,omitempty"`
	ResponsibleUserID *string   `json:"responsibleUserId,omitempty"`
	Status            string    `json:"status"`
	Notes             string    `json:"notes,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

func newClientResponse(client *clients.Client) ClientResponse {
	return ClientResponse{
		ID:                client.ID,
		Name:              client.Name,
		OrgNumber:         client.OrgNumber,
		ContactEmail:      client.ContactEmail,
		ContactPhone:      client.ContactPhone,
		AccountingSystem:  client.AccountingSystem,
		ExternalRef:       client.ExternalRef,
		ResponsibleUserID: client.ResponsibleUserID,
		Status:            client.Status,
		Notes:             client.Notes,
		CreatedAt:         client.CreatedAt,
		UpdatedAt:         client.UpdatedAt,
	}
}

// TaskResponse mirrors the task entity on the wire.
type TaskResponse struct {
	ID             string     `json:"id"`
	ClientID       string     `json:"clientId"`
	Title          string     `json:"title"`
	Description    string     `json:"description,omitempty"`
	AssigneeID     *string    `json:"assigneeId,omitempty"`
	Status         string     `json:"status"`
	Priority       string     `json:"priority"`
	DueDate        *time.Time `json:"dueDate,omitempty"`
	RecurrenceRule string     `json:"recurrenceRule"`
	CompletedAt    *time.Time `json:"completedAt,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

func newTaskResponse(task *tasks.Task) TaskResponse {
	return TaskResponse{
		ID:             task.ID,
		ClientID:       task.ClientID,
		Title:          task.Title,
		Description:    task.Description,
		AssigneeID:     task.AssigneeID,
		Status:         task.Status,
		Priority:       task.Priority,
		DueDate:        task.DueDate,
		RecurrenceRule: task.RecurrenceRule,
		CompletedAt:    task.CompletedAt,
		CreatedAt:      task.CreatedAt,
		UpdatedAt:      task.UpdatedAt,
	}
}

// ChecklistItemResponse mirrors a checklist item on the wire.
type ChecklistItemResponse struct {
	ID           string     `json:"id"`
	TaskID       string     `json:"taskId"`
	Label        string     `json:"label"`
	Done         bool       `json:"done"`
	DoneByUserID *string    `json:"doneByUserId,omitempty"`
	DoneAt       *time.Time `json:"doneAt,omitempty"`
	Position     int        `json:"position"`
}

func newChecklistItemResponse(item *tasks.ChecklistItem) ChecklistItemResponse {
	return ChecklistItemResponse{
		ID:           item.ID,
		TaskID:       item.TaskID,
		Label:        item.Label,
		Done:         item.Done,
		DoneByUserID: item.DoneByUserID,
		DoneAt:       item.DoneAt,
		Position:     item.Position,
	}
}

// TaskDetailResponse is a task with its checklist.
type TaskDetailResponse struct {
	TaskResponse
	Checklist []ChecklistItemResponse `json:"checklist"`
}

// TimeEntryResponse mirrors the time entry entity on the wire.
type TimeEntryResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	ClientID    string    `json:"clientId"`
	TaskID      *string   `json:"taskId,omitempty"`
	Date        time.Time `json:"date"`
	Minutes     int       `json:"minutes"`
	Billable    bool      `json:"billable"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

func newTimeEntryResponse(entry *timetracking.TimeEntry) TimeEntryResponse {
	return TimeEntryResponse{
		ID:          entry.ID,
		UserID:      entry.UserID,
		ClientID:    entry.ClientID,
		TaskID:      entry.TaskID,
		Date:        entry.Date,
		Minutes:     entry.Minutes,
		Billable:    entry.Billable,
		Description: entry.Description,
		CreatedAt:   entry.CreatedAt,
	}
}

// TotalsResponse aggregates minutes over a time entry filter.
type TotalsResponse struct {
	TotalMinutes    int64   `json:"totalMinutes"`
	BillableMinutes int64   `json:"billableMinutes"`
	EntryCount      int64   `json:"entryCount"`
	BillableShare   float64 `json:"billableShare"`
}

// AmlStatusResponse mirrors the AML status entity on the wire.
type AmlStatusResponse struct {
	ID               string    `json:"id"`
	ClientID         string    `json:"clientId"`
	GeographyRisk    int       `json:"geographyRisk"`
	IndustryRisk     int       `json:"industryRisk"`
	OwnershipRisk    int       `json:"ownershipRisk"`
	TransactionRisk  int       `json:"transactionRisk"`
	PepConfirmed     bool      `json:"pepConfirmed"`
	IdentityVerified bool      `json:"identityVerified"`
	RiskScore        float64   `json:"riskScore"`
	RiskLevel        string    `json:"riskLevel"`
	LastReviewedAt   time.Time `json:"lastReviewedAt"`
	NextReviewAt     time.Time `json:"nextReviewAt"`
	ReviewedBy       string    `json:"reviewedBy"`
}

func newAmlStatusResponse(status *aml.AmlStatus) AmlStatusResponse {
	return AmlStatusResponse{
		ID:               status.ID,
		ClientID:         status.ClientID,
		GeographyRisk:    status.GeographyRisk,
		IndustryRisk:     status.IndustryRisk,
		OwnershipRisk:    status.OwnershipRisk,
		TransactionRisk:  status.TransactionRisk,
		PepConfirmed:     status.PepConfirmed,
		IdentityVerified: status.IdentityVerified,
		RiskScore:        status.RiskScore,
		RiskLevel:        status.RiskLevel,
		LastReviewedAt:   status.LastReviewedAt,
		NextReviewAt:     status.NextReviewAt,
		ReviewedBy:       status.ReviewedBy,
	}
}

// UserResponse mirrors the user entity on the wire. The password hash never
// leaves the service layer.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

func newUserResponse(user *users.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Role:      user.Role,
		Active:    user.Active,
		CreatedAt: user.CreatedAt,
	}
}

// TokenResponse mirrors API token metadata on the wire. The hash is redacted;
// the plain token appears only in LoginResponse and IssueTokenResponse.
type TokenResponse struct {
	ID         string     `json:"id"`
	UserID     string     `json:"userId"`
	Name       string     `json:"name"`
	ExpiresAt  time.Time  `json:"expiresAt"`
	LastUsedAt *time.Time `json:"lastUsedAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

func newTokenResponse(token *users.ApiToken) TokenResponse {
	return TokenResponse{
		ID:         token.ID,
		UserID:     token.UserID,
		Name:       token.Name,
		ExpiresAt:  token.ExpiresAt,
		LastUsedAt: token.LastUsedAt,
		CreatedAt:  token.CreatedAt,
	}
}

// LoginResponse carries the freshly issued bearer token. The plain token is
// returned exactly once.
type LoginResponse struct {
	Token    string        `json:"token"`
	Metadata TokenResponse `json:"metadata"`
}

// LicenseResponse mirrors the license entity on the wire.
type LicenseResponse struct {
	ID        string    `json:"id"`
	FirmName  string    `json:"firmName"`
	OrgNumber string    `json:"orgNumber"`
	Plan      string    `json:"plan"`
	SeatLimit int       `json:"seatLimit"`
	Status    string    `json:"status"`
	RenewsAt  time.Time `json:"renewsAt"`
	CreatedAt time.Time `json:"createdAt"`
}

func newLicenseResponse(license *licensing.License) LicenseResponse {
	return LicenseResponse{
		ID:        license.ID,
		FirmName:  license.FirmName,
		OrgNumber: license.OrgNumber,
		Plan:      license.Plan,
		SeatLimit: license.SeatLimit,
		Status:    license.Status,
		RenewsAt:  license.RenewsAt,
		CreatedAt: license.CreatedAt,
	}
}

// SeatUsageResponse reports seat occupancy for the license.
type SeatUsageResponse struct {
	SeatLimit   int     `json:"seatLimit"`
	ActiveUsers int     `json:"activeUsers"`
	UsedPercent float64 `json:"usedPercent"`
}

// NotificationResponse mirrors the notification entity on the wire.
type NotificationResponse struct {
	ID        string     `json:"id"`
	Type      string     `json:"type"`
	Title     string     `json:"title"`
	Body      string     `json:"body,omitempty"`
	SubjectID *string    `json:"subjectId,omitempty"`
	ReadAt    *time.Time `json:"readAt,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

func newNotificationResponse(n *notifications.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Type:      n.Type,
		Title:     n.Title,
		Body:      n.Body,
		SubjectID: n.SubjectID,
		ReadAt:    n.ReadAt,
		CreatedAt: n.CreatedAt,
	}
}

// FlagResponse mirrors the feature flag entity on the wire.
type FlagResponse struct {
	Key         string  `json:"key"`
	Enabled     bool    `json:"enabled"`
	Description string  `json:"description,omitempty"`
	LicenseID   *string `json:"licenseId,omitempty"`
}

func newFlagResponse(flag *flags.FeatureFlag) FlagResponse {
	return FlagResponse{
		Key:         flag.Key,
		Enabled:     flag.Enabled,
		Description: flag.Description,
		LicenseID:   flag.LicenseID,
	}
}

// AuditEntryResponse mirrors one audit trail row on the wire.
type AuditEntryResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Entity    string    `json:"entity"`
	EntityID  string    `json:"entityId"`
	Action    string    `json:"action"`
	Details   string    `json:"details,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func newAuditEntryResponse(entry *audit.Entry) AuditEntryResponse {
	return AuditEntryResponse{
		ID:        entry.ID,
		UserID:    entry.UserID,
		Entity:    entry.Entity,
		EntityID:  entry.EntityID,
		Action:    entry.Action,
		Details:   entry.Details,
		CreatedAt: entry.CreatedAt,
	}
}

// SummaryResponse is the dashboard aggregate for one license.
type SummaryResponse struct {
	OpenTasks            int64   `json:"openTasks"`
	OverdueTasks         int64   `json:"overdueTasks"`
	TasksDueThisWeek     int64   `json:"tasksDueThisWeek"`
	HighRiskClients      int64   `json:"highRiskClients"`
	AmlReviewsOverdue    int64   `json:"amlReviewsOverdue"`
	MinutesThisMonth     int64   `json:"minutesThisMonth"`
	BillableMinutesMonth int64   `json:"billableMinutesMonth"`
	ActiveClients        int64   `json:"activeClients"`
	ActiveUsers          int64   `json:"activeUsers"`
	SeatLimit            int     `json:"seatLimit"`
	SeatUsagePercent     float64 `json:"seatUsagePercent"`
	UnreadNotifications  int64   `json:"unreadNotifications"`
}

// LetterResponse mirrors engagement letter metadata on the wire.
type LetterResponse struct {
	ID         string    `json:"id"`
	ClientID   string    `json:"clientId"`
	Version    int       `json:"version"`
	SizeBytes  int64     `json:"sizeBytes"`
	RenderedAt time.Time `json:"renderedAt"`
	RenderedBy string    `json:"renderedBy"`
}

func newLetterResponse(letter *documents.EngagementLetter) LetterResponse {
	return LetterResponse{
		ID:         letter.ID,
		ClientID:   letter.ClientID,
		Version:    letter.Version,
		SizeBytes:  letter.SizeBytes,
		RenderedAt: letter.RenderedAt,
		RenderedBy: letter.RenderedBy,
	}
}

// SyncResultResponse summarises one accounting registry sync run.
type SyncResultResponse struct {
	Vendor      string    `json:"vendor"`
	Matched     bool      `json:"matched"`
	ExternalRef string    `json:"externalRef,omitempty"`
	ClientsSeen int       `json:"clientsSeen"`
	SyncedAt    time.Time `json:"syncedAt"`
}

// VendorsResponse lists the registered accounting vendor keys.
type VendorsResponse struct {
	Vendors []string `json:"vendors"`
}
