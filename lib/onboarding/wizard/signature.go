package wizard

import (
	"context"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

var (
	ErrSignatureImageRequired = errors.New("Please draw your signature")
	ErrTypedNameRequired      = errors.New("Please type your full name")
	ErrSignatureCaptured      = errors.New("Signature is already captured")
)

// SignatureFlow - one signature per candidate, reused by every signed document
type SignatureFlow struct {
	mu       sync.Mutex
	api      DocumentAPI
	notifier *Notifier
	loaded   bool
	url      string
	name     string
}

func NewSignatureFlow(api DocumentAPI, notifier *Notifier) *SignatureFlow {
	return &SignatureFlow{
		api:      api,
		notifier: notifier,
	}
}

func (s *SignatureFlow) Load(ctx context.Context) error {
	view, err := s.api.GetSignature(ctx)
	if err != nil {
		s.notifier.Error(err.Error())
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loaded = true
	if view != nil && view.Exists {
		s.url = view.Url
		s.name = view.TypedName
	}
	return nil
}

// NeedsCapture - true until a signature is stored on the server
func (s *SignatureFlow) NeedsCapture() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.url == ""
}

func (s *SignatureFlow) Capture(ctx context.Context, image []byte, typedName string) error {
	typedName = strings.TrimSpace(typedName)
	if len(image) == 0 {
		return ErrSignatureImageRequired
	}
	if typedName == "" {
		return ErrTypedNameRequired
	}
	if !s.NeedsCapture() {
		return ErrSignatureCaptured
	}
	view, err := s.api.CaptureSignature(ctx, image, "signature.png", typedName)
	if err != nil {
		s.notifier.Error(err.Error())
		return err
	}
	s.mu.Lock()
	s.loaded = true
	s.url = view.Url
	s.name = view.TypedName
	s.mu.Unlock()
	s.notifier.Success("Signature saved")
	return nil
}

func (s *SignatureFlow) Url() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.url
}

func (s *SignatureFlow) TypedName() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.name
}
