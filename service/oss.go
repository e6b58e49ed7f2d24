package service

import (
	"Pinboard/config"
	"Pinboard/pkg/response"
	"Pinboard/pkg/snowflake"
	"Pinboard/types"
	"context"
	"fmt"
	"image"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

var _ IOssService = (*OssService)(nil)

type IOssService interface {
	// UploadImage 校验并上传一张图片，返回对象 key 和探测出的媒体信息
	UploadImage(ctx context.Context, header *multipart.FileHeader) (*types.UploadImageResp, error)

	// PublicURL 对象 key 转外链地址
	PublicURL(objectKey string) string

	// Delete 删除对象
	Delete(ctx context.Context, objectKey string) error
}

type OssService struct {
	Client *oss.Client
	Conf   *config.OssConfig
}

func NewOssService(client *oss.Client, cfg *config.OssConfig) IOssService {
	return &OssService{Client: client, Conf: cfg}
}

func (s *OssService) UploadImage(ctx context.Context, header *multipart.FileHeader) (*types.UploadImageResp, error) {
	const maxSize int64 = 10 << 20 // 10MB

	if header == nil {
		return nil, response.NewValidationError("缺少图片文件")
	}
	// header.Size 不可信，但可做第一道拦截
	if header.Size <= 0 || header.Size > maxSize {
		return nil, response.NewValidationError("图片大小超出限制")
	}

	f, err := header.Open()
	if err != nil {
		return nil, response.NewInternalError(err)
	}
	defer f.Close()

	seeker, ok := f.(io.ReadSeeker)
	if !ok {
		return nil, response.NewValidationError("上传流不可重读")
	}

	// MIME 校验（前 512 字节）
	head := make([]byte, 512)
	n, _ := seeker.Read(head)
	contentType := http.DetectContentType(head[:n])
	allowedMime := map[string]bool{
		"image/jpeg": true,
		"image/png":  true,
		"image/webp": true,
	}
	if !allowedMime[contentType] {
		return nil, response.NewValidationError("不支持的图片类型: " + contentType)
	}
	_, _ = seeker.Seek(0, io.SeekStart)

	// 只解头部拿尺寸和格式，不解码全图
	cfg, format, err := image.DecodeConfig(seeker)
	if err != nil {
		return nil, response.NewValidationError("图片内容无效")
	}
	format = strings.ToLower(format)
	_, _ = seeker.Seek(0, io.SeekStart)

	ext := "." + format
	if format == "jpeg" {
		ext = ".jpg"
	}
	objectKey := fmt.Sprintf("pin/%s/%d%s",
		time.Now().Format("2006/01/02"),
		snowflake.GenID(),
		ext,
	)

	limited := io.LimitReader(seeker, maxSize+1)
	if _, err := s.Client.PutObject(ctx, &oss.PutObjectRequest{
		Bucket: oss.Ptr(s.Conf.Bucket),
		Key:    oss.Ptr(objectKey),
		Body:   limited,
	}); err != nil {
		return nil, response.NewInternalError(err)
	}

	return &types.UploadImageResp{
		Key: objectKey,
		URL: s.PublicURL(objectKey),
		Media: types.MediaMeta{
			Width:  cfg.Width,
			Height: cfg.Height,
			Format: format,
		},
	}, nil
}

func (s *OssService) PublicURL(objectKey string) string {
	if objectKey == "" {
		return ""
	}
	return strings.TrimSuffix(s.Conf.BaseURL, "/") + "/" + objectKey
}

func (s *OssService) Delete(ctx context.Context, objectKey string) error {
	_, err := s.Client.DeleteObject(ctx, &oss.DeleteObjectRequest{
		Bucket: oss.Ptr(s.Conf.Bucket),
		Key:    oss.Ptr(objectKey),
	})
	return err
}
