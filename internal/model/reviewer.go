package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/nyaruka/phonenumbers"
)

var validate = validator.New()

// Reviewer 评论者实体
type Reviewer struct {
	ID          int    `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"not null"`
	Email       string `json:"email" gorm:"not null;uniqueIndex"`
	CountryCode string `json:"country_code,omitempty" gorm:"size:2"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

// NewReviewer 创建评论者
// 姓名和邮箱必填，邮箱必须合法；国家代码可选，提供时规范化为大写
// ISO 3166 两位代码；电话和国家代码同时提供时按该地区校验号码格式
func NewReviewer(name, email, countryCode, phoneNumber string) (*Reviewer, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.New("评论者姓名不能为空")
	}
	if err := validate.Var(email, "required,email"); err != nil {
		return nil, fmt.Errorf("邮箱 %q 格式无效", email)
	}

	region := ""
	if countryCode != "" {
		region = strings.ToUpper(strings.TrimSpace(countryCode))
		if len(region) != 2 || phonenumbers.GetCountryCodeForRegion(region) == 0 {
			return nil, fmt.Errorf("国家代码 %q 不是有效的 ISO 两位地区代码", countryCode)
		}
	}

	if phoneNumber != "" && region != "" {
		num, err := phonenumbers.Parse(phoneNumber, region)
		if err != nil || !phonenumbers.IsValidNumberForRegion(num, region) {
			return nil, fmt.Errorf("电话号码 %q 不符合地区 %s 的格式", phoneNumber, region)
		}
	}

	return &Reviewer{
		Name:        name,
		Email:       email,
		CountryCode: region,
		PhoneNumber: phoneNumber,
	}, nil
}
