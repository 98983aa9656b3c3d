package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"crowdaid-backend/internal/auth"
	"crowdaid-backend/internal/database/models"
	apperrors "crowdaid-backend/internal/errors"
	"crowdaid-backend/internal/logger"
	"crowdaid-backend/internal/notify"
	"crowdaid-backend/internal/policy"
	"crowdaid-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListScope selects whose emergencies ListEmergencies returns
type ListScope string

const (
	ScopeMine ListScope = "mine"
	ScopeAll  ListScope = "all"
)

// EmergencyService orchestrates the emergency lifecycle. It is the only place
// where authorization and the status state machine are enforced.
type EmergencyService struct {
	repo       repository.EmergencyRepositoryInterface
	users      repository.UserRepositoryInterface
	volunteers repository.VolunteerDirectory
	notifier   NotificationServiceInterface
	dispatcher TaskDispatcher
	validator  *validator.Validate
	now        func() time.Time
}

// NewEmergencyService creates a new emergency service
func NewEmergencyService(
	repo repository.EmergencyRepositoryInterface,
	users repository.UserRepositoryInterface,
	volunteers repository.VolunteerDirectory,
	notifier NotificationServiceInterface,
	dispatcher TaskDispatcher,
	validator *validator.Validate,
) *EmergencyService {
	return &EmergencyService{
		repo:       repo,
		users:      users,
		volunteers: volunteers,
		notifier:   notifier,
		dispatcher: dispatcher,
		validator:  validator,
		now:        time.Now,
	}
}

// ReporterContact is optional contact information supplied by a reporter without an account
type ReporterContact struct {
	FirstName string `json:"first_name" validate:"max=100"`
	LastName  string `json:"last_name" validate:"max=100"`
	Phone     string `json:"phone" validate:"max=30"`
}

// CreateEmergencyRequest represents the request to report an emergency
type CreateEmergencyRequest struct {
	Type        models.EmergencyType     `json:"type" validate:"required,max=50"`
	Title       string                   `json:"title" validate:"required,min=1,max=200"`
	Description string                   `json:"description" validate:"required,max=5000"`
	Location    json.RawMessage          `json:"location" validate:"required" swaggertype:"object"`
	Priority    models.EmergencyPriority `json:"priority,omitempty" validate:"omitempty,oneof=LOW MEDIUM HIGH CRITICAL"`
	Reporter    *ReporterContact         `json:"reporter,omitempty"`
}

// ListEmergenciesRequest represents the filters of an emergency listing
type ListEmergenciesRequest struct {
	Scope  ListScope              `json:"scope"`
	Status models.EmergencyStatus `json:"status" validate:"omitempty,oneof=PENDING ASSIGNED IN_PROGRESS RESOLVED CANCELLED"`
	Type   models.EmergencyType   `json:"type" validate:"omitempty,max=50"`
}

// UpdateEmergencyRequest represents an owner's partial edit of an emergency
type UpdateEmergencyRequest struct {
	Title       *string                   `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string                   `json:"description,omitempty" validate:"omitempty,max=5000"`
	Location    json.RawMessage           `json:"location,omitempty" swaggertype:"object"`
	Type        *models.EmergencyType     `json:"type,omitempty" validate:"omitempty,min=1,max=50"`
	Priority    *models.EmergencyPriority `json:"priority,omitempty" validate:"omitempty,oneof=LOW MEDIUM HIGH CRITICAL"`
	Status      *models.EmergencyStatus   `json:"status,omitempty" validate:"omitempty,oneof=PENDING ASSIGNED IN_PROGRESS RESOLVED CANCELLED"`
}

// RespondRequest represents a volunteer's offer to help
type RespondRequest struct {
	Message string `json:"message" validate:"max=2000"`
}

// EmergencyStats summarizes the platform for administrators
type EmergencyStats struct {
	Total              int64            `json:"total"`
	Active             int64            `json:"active"`
	ByStatus           map[string]int64 `json:"by_status"`
	VerifiedVolunteers int64            `json:"verified_volunteers"`
}

// CreateEmergency stores a new emergency and alerts every verified volunteer in
// the background. principal is nil on the public path, in which case an
// anonymous reporter account is created. Alert failures never fail the call.
func (s *EmergencyService) CreateEmergency(principal *auth.Principal, req *CreateEmergencyRequest) (*models.Emergency, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.Type = models.EmergencyType(strings.TrimSpace(string(req.Type)))
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := validateLocation(req.Location); err != nil {
		return nil, err
	}

	reporter, err := s.resolveReporter(principal, req.Reporter)
	if err != nil {
		return nil, err
	}

	priority := req.Priority
	if priority == "" {
		priority = models.EmergencyPriorityMedium
	}

	emergency := &models.Emergency{
		UserID:      reporter.ID,
		Type:        req.Type,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Priority:    priority,
		Status:      models.EmergencyStatusPending,
	}
	if err := s.repo.Create(emergency); err != nil {
		return nil, fmt.Errorf("failed to create emergency: %w", err)
	}

	emergency.Reporter = &models.ReporterSummary{
		ID:        reporter.ID,
		FirstName: reporter.FirstName,
		LastName:  reporter.LastName,
		Phone:     reporter.Phone,
	}
	emergency.Responses = []models.EmergencyResponse{}

	logger.New().WithFields(map[string]interface{}{
		"emergency_id": emergency.ID,
		"user_id":      reporter.ID,
		"type":         emergency.Type,
		"priority":     emergency.Priority,
		"anonymous":    reporter.IsAnonymous,
	}).Info("Emergency created")

	alert := *emergency
	s.dispatch(notify.Task{
		Name:   "notify_volunteers",
		Fields: map[string]interface{}{"emergency_id": emergency.ID},
		Run: func(ctx context.Context) error {
			_, err := s.notifier.NotifyVolunteers(ctx, &alert)
			return err
		},
	})

	return emergency, nil
}

// ListEmergencies returns emergencies newest first. The mine scope (default)
// restricts the listing to the caller's own reports; the all scope requires ADMIN.
func (s *EmergencyService) ListEmergencies(principal *auth.Principal, req *ListEmergenciesRequest) ([]models.Emergency, error) {
	if principal == nil {
		return nil, apperrors.ErrMissingPrincipal
	}
	if req == nil {
		req = &ListEmergenciesRequest{}
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	filter := repository.EmergencyFilter{Status: req.Status, Type: req.Type}
	switch req.Scope {
	case ScopeAll:
		if !policy.CanListAll(principal) {
			return nil, apperrors.ErrAdminRequired
		}
	case ScopeMine, "":
		owner := principal.UserID
		filter.OwnerID = &owner
	default:
		return nil, apperrors.ErrInvalidScope
	}

	emergencies, err := s.repo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list emergencies: %w", err)
	}
	return emergencies, nil
}

// GetEmergency returns one emergency if the caller may see it
func (s *EmergencyService) GetEmergency(principal *auth.Principal, id uuid.UUID) (*models.Emergency, error) {
	emergency, err := s.getByID(id)
	if err != nil {
		return nil, err
	}
	if !policy.CanView(principal, emergency) {
		return nil, apperrors.ErrNotAuthorizedToView
	}
	return emergency, nil
}

// UpdateEmergency applies the reporter's edits. Status changes must follow the
// state machine; resolution and assignment have their own operations.
func (s *EmergencyService) UpdateEmergency(principal *auth.Principal, id uuid.UUID, req *UpdateEmergencyRequest) (*models.Emergency, error) {
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		req.Title = &title
	}
	if req.Type != nil {
		emergencyType := models.EmergencyType(strings.TrimSpace(string(*req.Type)))
		req.Type = &emergencyType
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if len(req.Location) > 0 {
		if err := validateLocation(req.Location); err != nil {
			return nil, err
		}
	}

	emergency, err := s.getByID(id)
	if err != nil {
		return nil, err
	}
	if !policy.CanEdit(principal, emergency) {
		return nil, apperrors.ErrNotEmergencyOwner
	}
	if emergency.Status.IsTerminal() {
		return nil, apperrors.ErrEmergencyClosed
	}

	updates := make(map[string]interface{})
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if len(req.Location) > 0 {
		updates["location"] = req.Location
	}
	if req.Type != nil {
		updates["type"] = *req.Type
	}
	if req.Priority != nil {
		updates["priority"] = *req.Priority
	}

	// guarded on the active statuses, narrowed to the current one for a transition
	from := models.ActiveEmergencyStatuses()
	if req.Status != nil && *req.Status != emergency.Status {
		next := *req.Status
		switch {
		case next == models.EmergencyStatusResolved:
			return nil, apperrors.ErrResolveViaUpdate
		case next == models.EmergencyStatusAssigned:
			return nil, apperrors.ErrInvalidStatusTransition
		case !emergency.Status.CanTransitionTo(next):
			return nil, apperrors.ErrInvalidStatusTransition
		}
		updates["status"] = next
		from = []models.EmergencyStatus{emergency.Status}
	}

	if len(updates) == 0 {
		return emergency, nil
	}

	applied, err := s.repo.TransitionStatus(id, from, updates)
	if err != nil {
		return nil, fmt.Errorf("failed to update emergency: %w", err)
	}
	if !applied {
		return nil, s.explainRejectedWrite(id)
	}

	logger.New().WithFields(map[string]interface{}{
		"emergency_id": id,
		"user_id":      principal.UserID,
		"fields":       len(updates),
	}).Info("Emergency updated")

	return s.getByID(id)
}

// RespondToEmergency records a volunteer's offer to help. The first responder
// of a pending emergency is assigned to it; the reporter is notified of every response.
func (s *EmergencyService) RespondToEmergency(principal *auth.Principal, id uuid.UUID, req *RespondRequest) (*models.EmergencyResponse, error) {
	if principal == nil {
		return nil, apperrors.ErrMissingPrincipal
	}
	if req == nil {
		req = &RespondRequest{}
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	emergency, err := s.getByID(id)
	if err != nil {
		return nil, err
	}
	if emergency.Status.IsTerminal() {
		return nil, apperrors.ErrEmergencyClosed
	}

	response := &models.EmergencyResponse{
		EmergencyID: id,
		VolunteerID: principal.UserID,
		Message:     strings.TrimSpace(req.Message),
		Status:      models.ResponseStatusPending,
	}
	assigned, err := s.repo.AddResponse(response)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, apperrors.ErrEmergencyNotFound
		case errors.Is(err, apperrors.ErrEmergencyClosed):
			return nil, apperrors.ErrEmergencyClosed
		}
		return nil, fmt.Errorf("failed to record response: %w", err)
	}

	logger.New().WithFields(map[string]interface{}{
		"emergency_id": id,
		"response_id":  response.ID,
		"volunteer_id": principal.UserID,
		"assigned":     assigned,
	}).Info("Volunteer responded to emergency")

	notification := &NotifyRequest{
		UserID:  emergency.UserID,
		Type:    models.NotificationTypeVolunteerAssigned,
		Title:   volunteerResponseTitle,
		Message: volunteerResponseMessage,
		Data: map[string]interface{}{
			"emergency_id": id,
			"response_id":  response.ID,
			"volunteer_id": principal.UserID,
			"assigned":     assigned,
		},
	}
	s.dispatch(notify.Task{
		Name:   "notify_requester",
		Fields: map[string]interface{}{"emergency_id": id, "user_id": emergency.UserID},
		Run: func(ctx context.Context) error {
			_, err := s.notifier.Notify(ctx, notification)
			return err
		},
	})

	return response, nil
}

// ResolveEmergency closes an emergency. Only its reporter or the assigned volunteer may do so.
func (s *EmergencyService) ResolveEmergency(principal *auth.Principal, id uuid.UUID) (*models.Emergency, error) {
	emergency, err := s.getByID(id)
	if err != nil {
		return nil, err
	}
	if !policy.CanResolve(principal, emergency) {
		return nil, apperrors.ErrNotAuthorizedToResolve
	}
	if emergency.Status.IsTerminal() {
		return nil, apperrors.ErrEmergencyClosed
	}

	applied, err := s.repo.Resolve(id, s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to resolve emergency: %w", err)
	}
	if !applied {
		return nil, apperrors.ErrEmergencyClosed
	}

	logger.New().WithFields(map[string]interface{}{
		"emergency_id": id,
		"user_id":      principal.UserID,
	}).Info("Emergency resolved")

	return s.getByID(id)
}

// GetStats returns platform counters for administrators
func (s *EmergencyService) GetStats(principal *auth.Principal) (*EmergencyStats, error) {
	if !policy.CanViewStats(principal) {
		return nil, apperrors.ErrAdminRequired
	}

	counts, err := s.repo.CountByStatus()
	if err != nil {
		return nil, fmt.Errorf("failed to count emergencies: %w", err)
	}
	volunteers, err := s.volunteers.CountVerified()
	if err != nil {
		return nil, fmt.Errorf("failed to count volunteers: %w", err)
	}

	stats := &EmergencyStats{
		ByStatus:           make(map[string]int64, len(counts)),
		VerifiedVolunteers: volunteers,
	}
	for status, count := range counts {
		stats.ByStatus[string(status)] = count
		stats.Total += count
		if !status.IsTerminal() {
			stats.Active += count
		}
	}
	return stats, nil
}

func (s *EmergencyService) getByID(id uuid.UUID) (*models.Emergency, error) {
	emergency, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmergencyNotFound
		}
		return nil, fmt.Errorf("failed to get emergency: %w", err)
	}
	return emergency, nil
}

// explainRejectedWrite re-reads an emergency whose guarded write matched no row
func (s *EmergencyService) explainRejectedWrite(id uuid.UUID) error {
	current, err := s.getByID(id)
	if err != nil {
		return err
	}
	if current.Status.IsTerminal() {
		return apperrors.ErrEmergencyClosed
	}
	return apperrors.ErrInvalidStatusTransition
}

func (s *EmergencyService) resolveReporter(principal *auth.Principal, contact *ReporterContact) (*models.User, error) {
	if principal != nil {
		user, err := s.users.GetByID(principal.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrUserNotFound
			}
			return nil, fmt.Errorf("failed to get reporter: %w", err)
		}
		return user, nil
	}

	if contact == nil {
		contact = &ReporterContact{}
	}

	firstName := strings.TrimSpace(contact.FirstName)
	if firstName == "" {
		firstName = "Anonymous"
	}
	user := &models.User{
		FirstName:   firstName,
		LastName:    strings.TrimSpace(contact.LastName),
		Phone:       strings.TrimSpace(contact.Phone),
		Role:        models.UserRoleUser,
		IsActive:    true,
		IsAnonymous: true,
	}
	if err := s.users.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create anonymous reporter: %w", err)
	}
	return user, nil
}

// dispatch hands a task to the background worker. A full or stopped queue
// drops the task; the triggering write has already succeeded.
func (s *EmergencyService) dispatch(task notify.Task) {
	if err := s.dispatcher.Dispatch(task); err != nil {
		logger.New().WithFields(task.Fields).WithFields(map[string]interface{}{
			"task":  task.Name,
			"error": err.Error(),
		}).Error("Failed to dispatch notification task")
	}
}

// validateLocation rejects malformed JSON and an explicit null
func validateLocation(location json.RawMessage) error {
	if !json.Valid(location) || bytes.Equal(bytes.TrimSpace(location), []byte("null")) {
		return apperrors.NewValidationError("location", "must be a JSON value other than null")
	}
	return nil
}
