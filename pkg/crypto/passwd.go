package crypto

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = bcrypt.DefaultCost

// IsLegacyPlain 判断存量明文口令（旧库未做哈希，迁移期兼容）
func IsLegacyPlain(stored string) bool {
	return !strings.HasPrefix(stored, "$2a$") && !strings.HasPrefix(stored, "$2b$") && !strings.HasPrefix(stored, "$2y$")
}

// HashPassword 生成 bcrypt 哈希，长度 60 以内适配 varchar(64)
func HashPassword(pwd string) (string, error) {
	bs, err := bcrypt.GenerateFromPassword([]byte(pwd), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bs), nil
}

// VerifyPassword 自动检测算法：bcrypt 优先，存量明文按等值比较
func VerifyPassword(stored, plain string) bool {
	if stored == "" {
		return false
	}
	if IsLegacyPlain(stored) {
		return plain == stored
	}
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain)) == nil
}
