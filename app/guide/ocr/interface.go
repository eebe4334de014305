/**
 * @projectName: GuidePlatform
 * @package: ocr
 * @className: interface
 * @description: 身份证OCR提供商抽象
 * @version: 1.0
 *
 * OCR 只做人工审核的辅助：识别结果回写到申请记录供审核员比对，
 * 识别失败不阻塞审核流程。
 */

package ocr

import (
	"context"
)

// ProviderNameTencent 腾讯云提供商名称
const ProviderNameTencent = "tencent"

// IDCardResult 身份证识别结果
type IDCardResult struct {
	// Name 识别出的姓名
	Name string `json:"name"`
	// IDNumber 识别出的身份证号
	IDNumber string `json:"idNumber"`
	// Platform 提供商名称
	Platform string `json:"platform"`
	// RawResponse 原始响应JSON（排障用）
	RawResponse string `json:"rawResponse,omitempty"`
}

// Provider 身份证OCR提供商
type Provider interface {
	// Name 返回提供商名称
	Name() string
	// IsAvailable 检查提供商是否可用
	IsAvailable(ctx context.Context) bool
	// RecognizeIDCard 识别身份证（正面取姓名与证号）
	RecognizeIDCard(ctx context.Context, frontImageURL, backImageURL string) (*IDCardResult, error)
}
