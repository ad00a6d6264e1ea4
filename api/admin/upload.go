package admin

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/yuesf/travel/client"
	"github.com/yuesf/travel/errors"
)

// UploadService 文件上传接口，multipart 表单提交
type UploadService struct {
	client *client.Client
}

// Image 上传图片。module 标识业务模块（attraction/hotel/product 等），
// 为空时归入 common
func (s *UploadService) Image(ctx context.Context, filename string, file io.Reader, module string) (*UploadResult, error) {
	return s.upload(ctx, "/common/file/upload/image", filename, file, module)
}

// Video 上传视频
func (s *UploadService) Video(ctx context.Context, filename string, file io.Reader, module string) (*UploadResult, error) {
	return s.upload(ctx, "/common/file/upload/video", filename, file, module)
}

func (s *UploadService) upload(ctx context.Context, path, filename string, file io.Reader, module string) (*UploadResult, error) {
	if module == "" {
		module = "common"
	}

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)

	part, err := form.CreateFormFile("file", filename)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeServerError, "构造上传表单失败")
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, errors.Wrap(err, errors.CodeServerError, "读取上传文件失败")
	}
	if err := form.WriteField("module", module); err != nil {
		return nil, errors.Wrap(err, errors.CodeServerError, "构造上传表单失败")
	}
	if err := form.Close(); err != nil {
		return nil, errors.Wrap(err, errors.CodeServerError, "构造上传表单失败")
	}

	var result UploadResult
	err = s.client.Do(ctx, client.RequestConfig{
		Path:   path,
		Method: http.MethodPost,
		Body:   buf.Bytes(),
		Header: map[string]string{"Content-Type": form.FormDataContentType()},
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}
