package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"unicode"
)

const (
	DefaultAccountType = "free"
	AnonymousName      = "Anonymous"
	AnonymousUsername  = "anonymous"
	placeholderInitial = "U"
)

// UserMetadata 身份服务保存的用户自定义资料
type UserMetadata struct {
	FullName    string `json:"full_name,omitempty"`
	Name        string `json:"name,omitempty"`
	Username    string `json:"username,omitempty"`
	AccountType string `json:"account_type,omitempty"`
}

// Value implements driver.Valuer
func (m UserMetadata) Value() (driver.Value, error) {
	return json.Marshal(m)
}

// Scan implements sql.Scanner
func (m *UserMetadata) Scan(value interface{}) error {
	*m = UserMetadata{}
	if value == nil {
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return fmt.Errorf("cannot scan %T into UserMetadata", value)
	}
}

// AuthUser 身份服务中的原始用户记录（只读，不归本服务所有）
type AuthUser struct {
	ID       string       `gorm:"column:id;primaryKey"`
	Email    string       `gorm:"column:email"`
	Metadata UserMetadata `gorm:"column:raw_user_meta_data;type:jsonb"`
}

// DisplayIdentity 对外展示的用户身份
type DisplayIdentity struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	FullName    string `json:"full_name"`
	Username    string `json:"username"`
	AccountType string `json:"account_type"`
}

// Derive 由原始记录推导展示身份
//
//	full name:    full_name > name > email local part
//	username:     username > first word of full name (when it differs from the local part) > local part
//	account type: account_type > "free"
func Derive(u AuthUser) DisplayIdentity {
	local := emailLocalPart(u.Email)

	fullName := firstNonEmpty(u.Metadata.FullName, u.Metadata.Name, local)

	firstName := ""
	if fields := strings.Fields(fullName); len(fields) > 0 {
		firstName = fields[0]
	}

	username := u.Metadata.Username
	if username == "" {
		if firstName != "" && firstName != local {
			username = firstName
		} else {
			username = local
		}
	}

	return DisplayIdentity{
		ID:          u.ID,
		Email:       u.Email,
		FullName:    fullName,
		Username:    username,
		AccountType: firstNonEmpty(u.Metadata.AccountType, DefaultAccountType),
	}
}

// Initials 由名字生成头像缩写，最多两个字符
func Initials(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return placeholderInitial
	}

	var b strings.Builder
	n := 0
	for _, f := range fields {
		if n == 2 {
			break
		}
		r := []rune(f)[0]
		b.WriteRune(unicode.ToUpper(r))
		n++
	}
	return b.String()
}

func emailLocalPart(email string) string {
	if i := strings.Index(email, "@"); i >= 0 {
		return email[:i]
	}
	return email
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
