package validator

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	zh_translations "github.com/go-playground/validator/v10/translations/zh"
)

// Validator 配置结构体校验器
type Validator interface {
	// Struct 校验结构体
	Struct(s any) error

	// StructCtx 带上下文校验结构体
	StructCtx(ctx context.Context, s any) error
}

// Validate 全局校验器实例
var (
	Validate Validator
	once     sync.Once
)

func init() {
	once.Do(func() {
		Validate = New()
	})
}

// Option 校验器选项
type Option func(*validatorImpl)

// WithDefaultLang 设置默认的错误消息语言（"en" 或 "zh"）
func WithDefaultLang(lang string) Option {
	return func(v *validatorImpl) {
		v.defaultLang = lang
	}
}

// validatorImpl 校验器实现
type validatorImpl struct {
	validator   *validator.Validate
	translators map[string]ut.Translator
	defaultLang string
}

// New 创建新的校验器实例，内置中英文错误消息翻译
func New(opts ...Option) Validator {
	v := &validatorImpl{
		validator:   validator.New(),
		translators: make(map[string]ut.Translator),
		defaultLang: "zh",
	}

	for _, opt := range opts {
		opt(v)
	}

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale, zh.New())

	if trans, found := uni.GetTranslator("en"); found {
		v.translators["en"] = trans
		_ = en_translations.RegisterDefaultTranslations(v.validator, trans)
	}
	if trans, found := uni.GetTranslator("zh"); found {
		v.translators["zh"] = trans
		_ = zh_translations.RegisterDefaultTranslations(v.validator, trans)
	}

	return v
}

// Struct 校验结构体
func (v *validatorImpl) Struct(s any) error {
	if s == nil {
		return errors.New("validation target cannot be nil")
	}
	return v.translate(v.validator.Struct(s))
}

// StructCtx 带上下文校验结构体
func (v *validatorImpl) StructCtx(ctx context.Context, s any) error {
	if s == nil {
		return errors.New("validation target cannot be nil")
	}
	return v.translate(v.validator.StructCtx(ctx, s))
}

// translate 将校验错误翻译为默认语言的可读消息
func (v *validatorImpl) translate(err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	trans, ok := v.translators[v.defaultLang]
	if !ok {
		return err
	}

	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		messages = append(messages, fe.Translate(trans))
	}

	return errors.New(strings.Join(messages, "; "))
}
