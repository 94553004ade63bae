// Package contact accepts, validates, stores and announces messages sent
// through the landing page contact form.
package contact

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ErrRateLimited is returned when a client has sent too many messages within
// the limiter window.
var ErrRateLimited = errors.New("contact: too many submissions")

// Request is the contact form payload.
type Request struct {
	Name    string `form:"name" json:"name" validate:"required,max=100"`
	Email   string `form:"email" json:"email" validate:"required,email,max=254"`
	Message string `form:"message" json:"message" validate:"required,max=5000"`
}

// Message is an accepted contact request.
type Message struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Body      string    `json:"message"`
	RemoteIP  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// ValidationErrors maps form field names to a user-facing (Portuguese) message.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return "contact: invalid fields: " + strings.Join(fields, ", ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate trims req and checks it. The returned error, if any, is a
// ValidationErrors.
func Validate(req Request) (Request, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Message = strings.TrimSpace(req.Message)

	err := validate.Struct(req)
	if err == nil {
		return req, nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return req, fmt.Errorf("contact: validate: %w", err)
	}
	out := make(ValidationErrors, len(verrs))
	for _, fe := range verrs {
		if _, seen := out[fe.Field()]; seen {
			continue
		}
		out[fe.Field()] = fieldMessage(fe.Tag())
	}
	return req, out
}

func fieldMessage(tag string) string {
	switch tag {
	case "required":
		return "Campo obrigatório."
	case "email":
		return "Email inválido."
	case "max":
		return "Texto demasiado longo."
	default:
		return "Valor inválido."
	}
}

// Saver persists accepted messages.
type Saver interface {
	Save(ctx context.Context, m Message) error
}

// Publisher announces accepted messages to interested parties.
type Publisher interface {
	Publish(m Message) error
}

// Service runs the submission pipeline: rate limit, validate, store, publish.
type Service struct {
	store     Saver
	publisher Publisher
	limiter   *Limiter
	logger    *slog.Logger
	now       func() time.Time
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithClock overrides the time source used to stamp messages.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) { s.now = now }
}

// WithLogger sets the logger used for non-fatal publish failures.
func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) { s.logger = l }
}

// NewService wires a Service. publisher may be nil.
func NewService(store Saver, publisher Publisher, limiter *Limiter, opts ...ServiceOption) *Service {
	s := &Service{
		store:     store,
		publisher: publisher,
		limiter:   limiter,
		logger:    slog.Default(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit accepts req from remoteIP. It returns ErrRateLimited,
// ValidationErrors, or a wrapped storage error on failure.
func (s *Service) Submit(ctx context.Context, remoteIP string, req Request) (msg Message, err error) {
	if s.limiter != nil {
		release, ok := s.limiter.Reserve(remoteIP)
		if !ok {
			return Message{}, ErrRateLimited
		}
		// Rejected or unsaved submissions do not count against the client.
		defer func() {
			if err != nil {
				release()
			}
		}()
	}
	req, err = Validate(req)
	if err != nil {
		return Message{}, err
	}

	msg = Message{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Body:      req.Message,
		RemoteIP:  remoteIP,
		CreatedAt: s.now().UTC(),
	}
	if err := s.store.Save(ctx, msg); err != nil {
		return Message{}, fmt.Errorf("contact: save: %w", err)
	}
	if s.publisher != nil {
		if err := s.publisher.Publish(msg); err != nil {
			s.logger.Warn("contact message stored but not announced", "id", msg.ID, "error", err)
		}
	}
	return msg, nil
}
