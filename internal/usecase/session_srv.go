package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"cinemabook/internal/data/entity"
	"cinemabook/internal/data/repository"
	"cinemabook/internal/dto/request"
	"cinemabook/internal/dto/response"
	"cinemabook/pkg/metrics"
	"cinemabook/pkg/utils"

	"go.uber.org/zap"
)

// SessionService owns the in-progress booking sessions. Each session is a
// self-contained context object keyed by an opaque token, so any number of
// booking flows can run side by side.
type SessionService interface {
	StartSession(ctx context.Context, req *request.StartSessionRequest) (*response.SessionResponse, error)
	GetSession(ctx context.Context, sessionID string) (*response.SessionResponse, error)
	ToggleSeat(ctx context.Context, sessionID, seatID string) (*response.SessionResponse, error)
	ClearSelection(ctx context.Context, sessionID string) (*response.SessionResponse, error)
	AbandonSession(ctx context.Context, sessionID string) error

	// Session exposes the raw session for checkout.
	Session(ctx context.Context, sessionID string) (*entity.BookingSession, error)
	// FinishSession drops a session once its booking is confirmed.
	FinishSession(ctx context.Context, sessionID string)
}

type sessionService struct {
	repo   *repository.Repository
	config *utils.Config
	m      *metrics.Metrics
	log    *zap.Logger

	mu       sync.Mutex
	sessions map[string]*entity.BookingSession
}

func NewSessionService(
	repo *repository.Repository,
	config *utils.Config,
	m *metrics.Metrics,
	log *zap.Logger,
) SessionService {
	return &sessionService{
		repo:     repo,
		config:   config,
		m:        m,
		log:      log.With(zap.String("service", "session")),
		sessions: make(map[string]*entity.BookingSession),
	}
}

func (s *sessionService) StartSession(ctx context.Context, req *request.StartSessionRequest) (*response.SessionResponse, error) {
	movie, err := s.repo.Catalog.MovieByID(ctx, req.MovieID)
	if err != nil {
		return nil, err
	}
	if !movie.Bookable() {
		return nil, fmt.Errorf("%w: %s", entity.ErrMovieNotBookable, movie.Title)
	}

	theater, err := s.repo.Catalog.TheaterByID(ctx, req.TheaterID)
	if err != nil {
		return nil, err
	}
	if !theater.OffersShowtime(req.Showtime) {
		return nil, fmt.Errorf("%w: %q at %s", entity.ErrShowtimeNotOffered, req.Showtime, theater.Name)
	}

	screenID := req.ScreenID
	if screenID == "" && len(theater.Screens) > 0 {
		screenID = theater.Screens[0].ID
	}
	screen, err := s.repo.Catalog.Screen(ctx, theater.ID, screenID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	session := &entity.BookingSession{
		ID:        utils.GenerateSessionToken(),
		Movie:     movie,
		Theater:   theater,
		Screen:    screen,
		Showtime:  req.Showtime,
		Date:      req.Date,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()
	s.m.ActiveSessions.Inc()

	s.log.Info("Booking session started",
		zap.String("session_id", session.ID),
		zap.String("movie_id", movie.ID),
		zap.String("theater_id", theater.ID),
		zap.String("screen_id", screen.ID),
		zap.String("showtime", req.Showtime),
		zap.String("date", req.Date),
	)

	resp := response.NewSessionResponse(session, s.config.Pricing.ConvenienceFee)
	return &resp, nil
}

func (s *sessionService) GetSession(ctx context.Context, sessionID string) (*response.SessionResponse, error) {
	session, err := s.Session(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	resp := response.NewSessionResponse(session, s.config.Pricing.ConvenienceFee)
	s.mu.Unlock()
	return &resp, nil
}

func (s *sessionService) ToggleSeat(ctx context.Context, sessionID, seatID string) (*response.SessionResponse, error) {
	session, err := s.Session(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	// Read the live seat state, not the session's startup snapshot, so a
	// seat booked by a parallel checkout is rejected here.
	seat, err := s.repo.Catalog.Seat(ctx, session.Theater.ID, session.Screen.ID, seatID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	added, err := session.Selection.Toggle(seat)
	if err != nil {
		return nil, err
	}
	session.UpdatedAt = time.Now()

	s.log.Debug("Seat toggled",
		zap.String("session_id", sessionID),
		zap.String("seat_id", seatID),
		zap.Bool("added", added),
		zap.Int("selected", session.Selection.Count()),
	)

	resp := response.NewSessionResponse(session, s.config.Pricing.ConvenienceFee)
	return &resp, nil
}

func (s *sessionService) ClearSelection(ctx context.Context, sessionID string) (*response.SessionResponse, error) {
	session, err := s.Session(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session.Selection.Clear()
	session.UpdatedAt = time.Now()

	resp := response.NewSessionResponse(session, s.config.Pricing.ConvenienceFee)
	return &resp, nil
}

func (s *sessionService) AbandonSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	_, ok := s.sessions[sessionID]
	if ok {
		delete(s.sessions, sessionID)
	}
	s.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: %s", entity.ErrSessionNotFound, sessionID)
	}

	s.m.ActiveSessions.Dec()
	s.log.Info("Booking session abandoned", zap.String("session_id", sessionID))
	return nil
}

func (s *sessionService) Session(ctx context.Context, sessionID string) (*entity.BookingSession, error) {
	s.mu.Lock()
	session, ok := s.sessions[sessionID]
	s.mu.Unlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", entity.ErrSessionNotFound, sessionID)
	}
	return session, nil
}

func (s *sessionService) FinishSession(ctx context.Context, sessionID string) {
	s.mu.Lock()
	_, ok := s.sessions[sessionID]
	if ok {
		delete(s.sessions, sessionID)
	}
	s.mu.Unlock()

	if ok {
		s.m.ActiveSessions.Dec()
	}
}
