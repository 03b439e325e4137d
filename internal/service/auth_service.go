package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"go-sysadmin/internal/domain/model"
	"go-sysadmin/internal/logging"
	"go-sysadmin/internal/repository/dao"
	redisrepo "go-sysadmin/internal/repository/redis"
	"go-sysadmin/internal/security/jwt"
	"go-sysadmin/pkg/crypto"
)

// LoginLogPublisher 登录日志异步投递口, 由 kafka 侧实现.
type LoginLogPublisher interface {
	Publish(ctx context.Context, entry model.SysLoginLog)
}

// AuthService 登录签发与注销.
type AuthService struct {
	userDAO    *dao.SysUserDAO
	perm       *PermissionService
	tokens     *jwt.Manager
	redis      *redisrepo.Client
	loginLog   LoginLogPublisher
	logger     *logging.Logger
	jtiPrefix  string
}

func NewAuthService(userDAO *dao.SysUserDAO, perm *PermissionService, tokens *jwt.Manager, rc *redisrepo.Client, pub LoginLogPublisher, l *logging.Logger, jtiPrefix string) *AuthService {
	if jtiPrefix == "" {
		jtiPrefix = "jwt:jti:"
	}
	return &AuthService{userDAO: userDAO, perm: perm, tokens: tokens, redis: rc, loginLog: pub, logger: l, jtiPrefix: jtiPrefix}
}

func (s *AuthService) tracer() trace.Tracer { return otel.Tracer("service.auth") }

// Login 校验手机号与密码, 通过后签发携带权限快照的 token.
// 权限集合为空的用户视为未分配角色, 拒绝登录.
func (s *AuthService) Login(ctx context.Context, mobile, password, ip string) (string, error) {
	ctx, span := s.tracer().Start(ctx, "auth.login")
	defer span.End()
	span.SetAttributes(attribute.String("login.mobile", mobile))

	fail := func(err error) (string, error) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.record(ctx, mobile, ip, 0, err.Error())
		return "", err
	}

	user, err := s.userDAO.FindByMobile(ctx, mobile)
	if err != nil {
		return fail(fmt.Errorf("login: %w", err))
	}
	if user == nil {
		return fail(ErrUserNotFound)
	}
	if user.StatusID != 1 {
		return fail(ErrUserDisabled)
	}
	if !crypto.VerifyPassword(user.Password, password) {
		return fail(ErrInvalidCredentials)
	}
	// 旧库明文口令在首次成功登录时原地升级为 bcrypt
	if crypto.IsLegacyPlain(user.Password) {
		s.upgradePassword(user.ID, password)
	}

	perms, err := s.perm.Resolve(ctx, user.ID)
	if err != nil {
		return fail(fmt.Errorf("login: %w", err))
	}
	if len(perms) == 0 {
		return fail(ErrNoPermissions)
	}

	jti := uuid.NewString()
	token, err := s.tokens.Generate(user.ID, user.RealName, perms, jti)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.record(ctx, mobile, ip, 0, ErrTokenEncoding.Error())
		return "", ErrTokenEncoding
	}

	// JTI 白名单, 注销后即失效
	if s.redis != nil {
		if err := s.redis.SetTTL(ctx, s.jtiPrefix+jti, "1", s.tokens.ExpireDuration()); err != nil {
			s.logger.WithContext(ctx).Warn("写入 token 白名单失败", zap.Error(err))
		}
	}

	s.record(ctx, mobile, ip, 1, "登录成功")
	span.SetAttributes(attribute.Int64("user.id", user.ID), attribute.Int("permission.count", len(perms)))
	return token, nil
}

// Logout 吊销 token 对应的 JTI.
func (s *AuthService) Logout(ctx context.Context, jti string) error {
	if s.redis == nil || jti == "" {
		return nil
	}
	return s.redis.Del(ctx, s.jtiPrefix+jti)
}

func (s *AuthService) record(ctx context.Context, mobile, ip string, status int8, msg string) {
	if s.loginLog == nil {
		return
	}
	s.loginLog.Publish(ctx, model.SysLoginLog{
		Mobile:    mobile,
		IPAddr:    ip,
		StatusID:  status,
		Msg:       msg,
		LoginTime: time.Now().Unix(),
	})
}

func (s *AuthService) upgradePassword(userID int64, plain string) {
	go func() {
		hashed, err := crypto.HashPassword(plain)
		if err != nil {
			s.logger.Warn("口令升级失败", zap.Int64("user_id", userID), zap.Error(err))
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := s.userDAO.UpdatePassword(ctx, userID, hashed); err != nil {
			s.logger.Warn("口令升级写库失败", zap.Int64("user_id", userID), zap.Error(err))
		}
	}()
}
