package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/2beens/fittracker/pkg"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

var _ SessionResolver = (*SessionStore)(nil)

const (
	DefaultTTL       = 24 * 7 * time.Hour
	sessionKeyPrefix = "fittracker-session||"
	tokensSetKey     = "fittracker-sessions"

	fieldUserID    = "user_id"
	fieldCreatedAt = "created_at"
)

// SessionStore keeps session tokens in redis. Tokens are issued once the
// identity provider has vouched for the user, this service never sees credentials.
type SessionStore struct {
	redisClient *redis.Client
	ttl         time.Duration
	// ability to inject random string generator func for tokens (for unit and dev testing)
	RandStringFunc func(s int) (string, error)
	Now            func() time.Time
}

func NewSessionStore(ttl time.Duration, redisClient *redis.Client) *SessionStore {
	return &SessionStore{
		ttl:            ttl,
		redisClient:    redisClient,
		RandStringFunc: pkg.GenerateRandomString,
		Now:            time.Now,
	}
}

func (s *SessionStore) CreateSession(ctx context.Context, userID string) (string, error) {
	if userID == "" {
		return "", ErrEmptyUserID
	}

	token, err := s.RandStringFunc(35)
	if err != nil {
		return "", err
	}

	sessionKey := sessionKeyPrefix + token
	cmdHSet := s.redisClient.HSet(ctx, sessionKey, fieldUserID, userID, fieldCreatedAt, s.Now().Unix())
	if err := cmdHSet.Err(); err != nil {
		return "", err
	}

	// add token to list of sessions
	cmdSAdd := s.redisClient.SAdd(ctx, tokensSetKey, token)
	if err := cmdSAdd.Err(); err != nil {
		return "", err
	}

	return token, nil
}

func (s *SessionStore) UserForToken(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrUnauthenticated
	}

	userID, createdAt, err := s.session(ctx, token)
	if err != nil {
		return "", err
	}
	if s.Now().Sub(createdAt) > s.ttl {
		return "", fmt.Errorf("%w: session expired", ErrUnauthenticated)
	}
	return userID, nil
}

func (s *SessionStore) RevokeSession(ctx context.Context, token string) error {
	cmdDel := s.redisClient.Del(ctx, sessionKeyPrefix+token)
	if err := cmdDel.Err(); err != nil {
		return err
	}
	if cmdDel.Val() == 0 {
		return ErrUnauthenticated
	}

	// remove token from the list of sessions
	if err := s.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
		return err
	}
	return nil
}

// ScanAndClean will run through all sessions, check the TTL, and clean them if old
func (s *SessionStore) ScanAndClean(ctx context.Context) {
	cmd := s.redisClient.SMembers(ctx, tokensSetKey)
	if err := cmd.Err(); err != nil {
		log.Errorf("!!! sessions, scan and clean, get sessions: %s", err)
		return
	}

	sessionTokens := cmd.Val()
	if len(sessionTokens) == 0 {
		log.Debugln("=> sessions, scan and clean abort, no sessions")
		return
	}

	log.Debugf("=> sessions, scan and clean [%d sessions] start ...", len(sessionTokens))
	var toRemove []string
	for _, token := range sessionTokens {
		_, createdAt, err := s.session(ctx, token)
		if errors.Is(err, ErrUnauthenticated) {
			toRemove = append(toRemove, token)
			continue
		}
		if err != nil {
			log.Errorf("=> sessions, scan and clean token %s: %s", token, err)
			continue
		}
		if s.Now().Sub(createdAt) > s.ttl {
			toRemove = append(toRemove, token)
		}
	}

	for _, token := range toRemove {
		if err := s.redisClient.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
			log.Errorf("=> sessions, clean token %s: %s", token, err)
			continue
		}
		if err := s.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
			log.Errorf("=> sessions, clean token %s: %s", token, err)
		}
	}
	log.Debugf("=> sessions, scan and clean done, removed %d", len(toRemove))
}

func (s *SessionStore) session(ctx context.Context, token string) (string, time.Time, error) {
	cmd := s.redisClient.HGetAll(ctx, sessionKeyPrefix+token)
	if err := cmd.Err(); err != nil {
		return "", time.Time{}, err
	}

	fields := cmd.Val()
	userID := fields[fieldUserID]
	if userID == "" {
		return "", time.Time{}, ErrUnauthenticated
	}

	createdAtUnix, err := strconv.ParseInt(fields[fieldCreatedAt], 10, 64)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("parse session created at: %w", err)
	}
	return userID, time.Unix(createdAtUnix, 0), nil
}
