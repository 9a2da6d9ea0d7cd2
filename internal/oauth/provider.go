package oauth

import (
	"context"

	"github.com/hyeonwoo/placepick/internal/config"
	"github.com/hyeonwoo/placepick/internal/constant"
	"github.com/hyeonwoo/placepick/internal/model"
	"github.com/hyeonwoo/placepick/internal/util"
	"go.uber.org/zap"
)

// Claims is the normalized result of a completed OAuth exchange, independent
// of which provider produced it.
type Claims struct {
	Provider          string
	ProviderAccountID string
	Email             string
	Name              string
	AvatarURL         string
	AccessToken       string
	RefreshToken      string
	ExpiresAt         int64
}

// ProviderUnlinker notifies one OAuth provider that its issued token should no
// longer be valid. Implementations must treat revocation as best-effort.
type ProviderUnlinker interface {
	Unlink(ctx context.Context, account model.LinkedAccount) error
}

type UnlinkOutcome struct {
	Provider string `json:"provider"`
	Ok       bool   `json:"ok"`
	Detail   string `json:"detail,omitempty"`
}

// UnlinkOrchestrator runs revocation against every linked provider. Failures
// are isolated per provider: revocation is a courtesy to the provider, never a
// precondition for removing local data, so this type has no error return at
// the top level.
type UnlinkOrchestrator struct {
	logger    *zap.SugaredLogger
	unlinkers map[string]ProviderUnlinker
}

func NewUnlinkOrchestrator(cfg config.AuthConfig, logger *zap.SugaredLogger) *UnlinkOrchestrator {
	// For unit test
	if logger == nil {
		logger = util.NewLogger("")
	}

	return &UnlinkOrchestrator{
		logger: logger,
		unlinkers: map[string]ProviderUnlinker{
			constant.OAUTH_PROVIDER_GOOGLE: NewGoogleUnlinker(logger),
			constant.OAUTH_PROVIDER_KAKAO:  NewKakaoUnlinker(cfg.Kakao, logger),
			constant.OAUTH_PROVIDER_NAVER:  NewNaverUnlinker(cfg.Naver, logger),
		},
	}
}

// Register replaces the unlinker for a provider. Used by tests to point at
// fake endpoints.
func (o *UnlinkOrchestrator) Register(provider string, unlinker ProviderUnlinker) {
	o.unlinkers[provider] = unlinker
}

// UnlinkAll attempts revocation for each linked account sequentially. Unknown
// providers are logged and skipped. This path only runs during account
// deletion, so the summed per-provider latency is acceptable.
func (o *UnlinkOrchestrator) UnlinkAll(ctx context.Context, accounts []model.LinkedAccount) []UnlinkOutcome {
	outcomes := make([]UnlinkOutcome, 0, len(accounts))

	for _, account := range accounts {
		unlinker, ok := o.unlinkers[account.Provider]
		if !ok {
			o.logger.Warnf("Unlink: unknown provider %q, skipping", account.Provider)
			outcomes = append(outcomes, UnlinkOutcome{Provider: account.Provider, Ok: false, Detail: "unknown provider"})
			continue
		}

		if err := unlinker.Unlink(ctx, account); err != nil {
			o.logger.Warnf("Unlink: provider %s failed (continuing): %v", account.Provider, err)
			outcomes = append(outcomes, UnlinkOutcome{Provider: account.Provider, Ok: false, Detail: err.Error()})
			continue
		}

		o.logger.Debugf("Unlink: provider %s revoked", account.Provider)
		outcomes = append(outcomes, UnlinkOutcome{Provider: account.Provider, Ok: true})
	}

	return outcomes
}
