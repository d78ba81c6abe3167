package session

import (
	"ai900_study_backend/internal/config"
	"ai900_study_backend/internal/model"
	"ai900_study_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	ctxProgressKey  = "progress"
	ctxSessionIDKey = "session_id"
)

// Manager 把签名Cookie和进度存储绑在一起，控制器通过它读写当前会话
type Manager struct {
	store Store
	cfg   *config.SessionConfig
}

func NewManager(store Store, cfg *config.SessionConfig) *Manager {
	return &Manager{store: store, cfg: cfg}
}

// Middleware 惰性建立会话：无Cookie或令牌失效时发新令牌和空进度，
// 有效令牌则从存储加载进度并做旧形态迁移
func (m *Manager) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var sessionID string

		if cookie, err := c.Cookie(m.cfg.CookieName); err == nil && cookie != "" {
			if claims, err := ParseToken(cookie, m.cfg.Secret); err == nil {
				sessionID = claims.SessionID
			}
		}

		progress := model.NewProgress()
		if sessionID == "" {
			sessionID = NewSessionID()
			m.issueCookie(c, sessionID)
		} else if stored, err := m.store.Get(c.Request.Context(), sessionID); err != nil {
			logger.Log.Error("session load failed", zap.String("session_id", sessionID), zap.Error(err))
		} else if stored != nil {
			stored.Normalize()
			progress = stored
		}

		c.Set(ctxSessionIDKey, sessionID)
		c.Set(ctxProgressKey, progress)
		c.Next()
	}
}

func (m *Manager) issueCookie(c *gin.Context, sessionID string) {
	token, err := GenerateToken(sessionID, m.cfg.Secret, m.cfg.ExpireTime)
	if err != nil {
		logger.Log.Error("session token generation failed", zap.Error(err))
		return
	}
	c.SetCookie(m.cfg.CookieName, token, int(m.cfg.ExpireTime.Seconds()), "/", "", false, true)
}

// Save 把当前请求里修改过的进度写回存储
func (m *Manager) Save(c *gin.Context) error {
	return m.store.Put(c.Request.Context(), SessionID(c), Progress(c))
}

func SessionID(c *gin.Context) string {
	return c.GetString(ctxSessionIDKey)
}

func Progress(c *gin.Context) *model.Progress {
	v, exists := c.Get(ctxProgressKey)
	if !exists {
		return model.NewProgress()
	}
	p, ok := v.(*model.Progress)
	if !ok {
		return model.NewProgress()
	}
	return p
}
