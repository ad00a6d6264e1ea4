package client

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/yuesf/travel/auth"
	"github.com/yuesf/travel/errors"
	"github.com/yuesf/travel/log"
	"github.com/yuesf/travel/validator"
)

// HeaderRequestID 请求追踪头，每次请求生成新的 UUID
const HeaderRequestID = "X-Request-Id"

// Client 请求客户端。
// 封装鉴权前置检查、凭证附加、信封拆解、错误分类和重试，
// 调用方拿到的要么是解码后的 data，要么是结构化错误
type Client struct {
	cfg    Config
	http   *http.Client
	mgr    *auth.Manager
	status *auth.StatusCache
	scheme auth.Scheme

	hooks   Hooks
	logger  *log.Logger
	metrics *Metrics
	limiter *rate.Limiter
}

// New 创建请求客户端。
// status 可为 nil，此时跳过登录状态预检，只做本地凭证检查
func New(cfg Config, mgr *auth.Manager, status *auth.StatusCache, scheme auth.Scheme, opts ...Option) (*Client, error) {
	cfg.setDefaults()
	if err := validator.Validate.Struct(&cfg); err != nil {
		return nil, errors.Wrap(err, errors.CodeServerError, "invalid client config")
	}

	c := &Client{
		cfg:    cfg,
		http:   &http.Client{},
		mgr:    mgr,
		status: status,
		scheme: scheme,
		logger: log.G,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Do 执行一次请求并将响应 data 解码到 result。
//
// 流程：需要登录的请求先做本地凭证检查，没有凭证不发网络请求；
// 再做登录状态预检（验证请求本身失败时放行，由业务请求自己兜底）；
// 然后拼接 URL、附加凭证和追踪头、发送请求、拆信封、分类错误。
// 传输类错误按预算重试，业务错误立即返回。
// 鉴权失败在这里统一清会话、触发一次登录跳转，并把错误标记为已处理
func (c *Client) Do(ctx context.Context, rc RequestConfig, result any) error {
	method := strings.ToUpper(rc.Method)
	if method == "" {
		method = http.MethodGet
	}

	start := time.Now()
	err := c.do(ctx, method, rc, result)
	c.observe(method, rc.Path, start, err)

	if err != nil && boolOr(rc.ShowError, true) {
		c.hooks.showError(errors.FromError(err).Message)
	}
	return err
}

func (c *Client) do(ctx context.Context, method string, rc RequestConfig, result any) error {
	if boolOr(rc.NeedAuth, true) {
		if !c.mgr.IsLoggedIn() {
			c.logger.Info().Str("path", rc.Path).Msg("request blocked: not logged in")
			c.hooks.redirectToLogin()
			return errors.Handled(errors.Unauthorized())
		}

		if c.status != nil {
			valid, err := c.status.Check(ctx, false)
			if err != nil {
				// 验证请求自身失败不阻断业务请求，
				// 凭证真失效时业务请求会拿到 401
				c.logger.Warn().Err(err).Str("path", rc.Path).Msg("status pre-check failed, proceeding")
			} else if !valid {
				c.hooks.redirectToLogin()
				return errors.Handled(errors.SessionExpired())
			}
		}
	}

	if boolOr(rc.ShowLoading, true) {
		c.hooks.showLoading()
		defer c.hooks.hideLoading()
	}

	data, err := c.retry(ctx, rc.Path, func() ([]byte, error) {
		return c.doOnce(ctx, method, rc)
	})
	if err != nil {
		return err
	}

	if result == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, result); err != nil {
		return errors.Wrap(err, errors.CodeServerError, "解析响应数据失败")
	}
	return nil
}

// doOnce 发送一次请求并返回信封中的 data
func (c *Client) doOnce(ctx context.Context, method string, rc RequestConfig) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, errors.Timeout(err)
		}
	}

	timeout := rc.Timeout
	if timeout <= 0 {
		timeout = c.cfg.Timeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var body io.Reader
	switch b := rc.Body.(type) {
	case nil:
	case []byte:
		// 原始请求体（如 multipart），配合 Header 里的 Content-Type 使用
		body = bytes.NewReader(b)
	case json.RawMessage:
		body = bytes.NewReader(b)
	default:
		raw, err := json.Marshal(rc.Body)
		if err != nil {
			return nil, errors.Wrap(err, errors.CodeServerError, "序列化请求体失败")
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.buildURL(rc), body)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeServerError, errors.MsgRequestFailed)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(HeaderRequestID, uuid.NewString())
	for k, v := range rc.Header {
		req.Header.Set(k, v)
	}
	// 只要本地有凭证就附带，needAuth=false 的请求登录后也带上
	if token := c.mgr.Token(); strings.TrimSpace(token) != "" {
		c.scheme.Apply(req.Header, token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, classifyTransport(err)
	}
	defer resp.Body.Close()

	return c.handleResponse(resp)
}

// handleResponse 按 HTTP 状态和信封业务码分类响应
func (c *Client) handleResponse(resp *http.Response) ([]byte, error) {
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		switch resp.StatusCode {
		case http.StatusUnauthorized:
			return nil, c.handleUnauthorized(errors.SessionExpired())
		case http.StatusForbidden:
			return nil, errors.Forbidden()
		case http.StatusNotFound:
			return nil, errors.NotFound()
		case http.StatusInternalServerError:
			return nil, errors.ServerError()
		default:
			return nil, errors.RequestFailed(resp.StatusCode, fmt.Sprintf("请求失败: %d", resp.StatusCode))
		}
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, errors.Wrap(err, errors.CodeServerError, "解析响应数据失败")
	}

	if env.Code == envelopeSuccess {
		return env.Data, nil
	}

	if env.Code == errors.CodeUnauthorized {
		e := errors.RequestFailed(env.Code, env.Message)
		if env.Message == "" {
			e = errors.SessionExpired()
		}
		return nil, c.handleUnauthorized(e)
	}

	return nil, errors.RequestFailed(env.Code, env.Message)
}

// handleUnauthorized 统一处理鉴权失败：清会话、触发登录跳转，
// 并把错误标记为已处理，上层不必再做 401 分支
func (c *Client) handleUnauthorized(e *errors.Error) error {
	c.logger.Info().Msg("session rejected by server, clearing local credentials")
	c.mgr.ClearToken()
	c.hooks.redirectToLogin()
	return errors.Handled(e)
}

// buildURL 拼接请求地址：绝对地址原样使用，相对路径挂到 BaseURL 下
func (c *Client) buildURL(rc RequestConfig) string {
	target := rc.Path
	if !strings.HasPrefix(target, "http://") && !strings.HasPrefix(target, "https://") {
		target = strings.TrimRight(c.cfg.BaseURL, "/") + "/" + strings.TrimLeft(target, "/")
	}

	if len(rc.Query) > 0 {
		sep := "?"
		if strings.Contains(target, "?") {
			sep = "&"
		}
		target += sep + rc.Query.Encode()
	}
	return target
}

// observe 上报请求指标
func (c *Client) observe(method, path string, start time.Time, err error) {
	outcome := outcomeSuccess
	switch {
	case err == nil:
	case errors.Temporary(err):
		outcome = outcomeTransport
	default:
		outcome = outcomeBusiness
	}
	c.metrics.observe(method, path, outcome, time.Since(start))
}

// classifyTransport 区分超时和网络不可达，两类都可重试
func classifyTransport(err error) error {
	if stderrors.Is(err, context.DeadlineExceeded) {
		return errors.Timeout(err)
	}

	var nerr net.Error
	if stderrors.As(err, &nerr) && nerr.Timeout() {
		return errors.Timeout(err)
	}

	return errors.Unreachable(err)
}

// Get 发起 GET 请求
func (c *Client) Get(ctx context.Context, path string, query url.Values, result any) error {
	return c.Do(ctx, RequestConfig{Path: path, Method: http.MethodGet, Query: query}, result)
}

// Post 发起 POST 请求
func (c *Client) Post(ctx context.Context, path string, body, result any) error {
	return c.Do(ctx, RequestConfig{Path: path, Method: http.MethodPost, Body: body}, result)
}

// Put 发起 PUT 请求
func (c *Client) Put(ctx context.Context, path string, body, result any) error {
	return c.Do(ctx, RequestConfig{Path: path, Method: http.MethodPut, Body: body}, result)
}

// Delete 发起 DELETE 请求
func (c *Client) Delete(ctx context.Context, path string, result any) error {
	return c.Do(ctx, RequestConfig{Path: path, Method: http.MethodDelete}, result)
}
