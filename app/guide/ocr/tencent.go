/**
 * @projectName: GuidePlatform
 * @package: ocr
 * @className: tencent
 * @description: 腾讯云身份证OCR提供商实现（IDCardOCR API）
 * @version: 1.0
 *
 * API说明：
 * 使用腾讯云"身份证识别"API（Action: IDCardOCR）
 * 接口请求域名：ocr.tencentcloudapi.com
 * 正面（CardSide=FRONT）返回姓名、身份证号等字段；背面仅用于留档，不参与比对。
 */

package ocr

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"guide-platform/common/errorx"

	"github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/common"
	tcerrors "github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/common/errors"
	"github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/common/profile"
	ocrSdk "github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/ocr/v20181119"
	"github.com/zeromicro/go-zero/core/logx"
)

// TencentConfig 腾讯云OCR配置
type TencentConfig struct {
	// SecretId 密钥ID
	SecretId string
	// SecretKey 密钥Key
	SecretKey string
	// Region 地域（如 ap-guangzhou）
	Region string
	// Endpoint 服务端点（如 ocr.tencentcloudapi.com）
	Endpoint string
	// Timeout 超时时间（秒）
	Timeout int
	// Enabled 是否启用
	Enabled bool
}

// TencentProvider 腾讯云OCR提供商
type TencentProvider struct {
	config TencentConfig
	client *ocrSdk.Client
}

// 确保实现 Provider 接口
var _ Provider = (*TencentProvider)(nil)

// NewTencentProvider 创建腾讯云OCR提供商
func NewTencentProvider(config TencentConfig) (*TencentProvider, error) {
	if !config.Enabled {
		return &TencentProvider{config: config}, nil
	}

	credential := common.NewCredential(config.SecretId, config.SecretKey)

	cpf := profile.NewClientProfile()
	endpoint := config.Endpoint
	if endpoint == "" {
		endpoint = "ocr.tencentcloudapi.com"
	}
	cpf.HttpProfile.Endpoint = endpoint
	if config.Timeout > 0 {
		cpf.HttpProfile.ReqTimeout = config.Timeout
	} else {
		cpf.HttpProfile.ReqTimeout = 30
	}

	client, err := ocrSdk.NewClient(credential, config.Region, cpf)
	if err != nil {
		return nil, errorx.ErrOcrConfigInvalid()
	}

	return &TencentProvider{
		config: config,
		client: client,
	}, nil
}

// Name 返回提供商名称
func (p *TencentProvider) Name() string {
	return ProviderNameTencent
}

// IsAvailable 检查提供商是否可用
func (p *TencentProvider) IsAvailable(ctx context.Context) bool {
	return p.config.Enabled && p.client != nil
}

// RecognizeIDCard 识别身份证正面，返回姓名与证号
func (p *TencentProvider) RecognizeIDCard(
	ctx context.Context,
	frontImageURL, backImageURL string,
) (*IDCardResult, error) {
	if !p.IsAvailable(ctx) {
		return nil, errorx.ErrOcrServiceUnavailable()
	}

	startTime := time.Now()
	logx.WithContext(ctx).Infof("腾讯云OCR开始识别身份证: front=%s", frontImageURL)

	request := ocrSdk.NewIDCardOCRRequest()
	request.ImageUrl = common.StringPtr(frontImageURL)
	request.CardSide = common.StringPtr("FRONT")

	response, err := p.client.IDCardOCR(request)
	if err != nil {
		return nil, p.handleError(err)
	}
	if response == nil || response.Response == nil {
		return nil, errorx.New(errorx.CodeOcrRecognizeFailed)
	}

	result := &IDCardResult{Platform: p.Name()}
	if response.Response.Name != nil {
		result.Name = strings.TrimSpace(*response.Response.Name)
	}
	if response.Response.IdNum != nil {
		result.IDNumber = strings.TrimSpace(*response.Response.IdNum)
	}

	rawJSON, _ := json.Marshal(response.Response)
	result.RawResponse = string(rawJSON)

	logx.WithContext(ctx).Infof("腾讯云OCR识别完成: elapsed=%v, name=%s",
		time.Since(startTime), result.Name)
	return result, nil
}

// handleError 处理腾讯云API错误，直接返回 BizError
func (p *TencentProvider) handleError(err error) *errorx.BizError {
	logx.Errorf("[%s] OCR API错误: %v", p.Name(), err)

	if sdkErr, ok := err.(*tcerrors.TencentCloudSDKError); ok {
		switch sdkErr.Code {
		case "FailedOperation.ImageDecodeFailed",
			"FailedOperation.ImageNoText",
			"InvalidParameter.ImageStringError":
			return errorx.NewWithMessage(errorx.CodeOcrRecognizeFailed, "证件图片无法识别，请重新上传")
		default:
			return errorx.ErrOcrRecognizeFailed(err)
		}
	}

	if strings.Contains(err.Error(), "timeout") || strings.Contains(err.Error(), "Timeout") {
		return errorx.NewWithMessage(errorx.CodeOcrServiceUnavailable, "OCR服务请求超时")
	}

	return errorx.ErrOcrRecognizeFailed(err)
}
