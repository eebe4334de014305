/**
 * @projectName: GuidePlatform
 * @package: consumer
 * @className: ApplicationOcrConsumer
 * @description: 申请提交事件消费者（解析 RawMessage → 调 OCR 识别 → 回写申请记录）
 * @version: 1.0
 *
 * 消息来源: Guide API（申请人提交/补充材料后异步触发）
 * Topic: application:events（RawMessage 信封格式）
 *
 * OCR 结果只做人工审核辅助：识别失败不影响申请流程，
 * 姓名/证号与申请填写不一致时只记日志，留给审核员判断。
 */

package consumer

import (
	"context"
	"encoding/json"

	"guide-platform/app/guide/model"
	"guide-platform/app/guide/ocr"
	"guide-platform/common/messaging"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/zeromicro/go-zero/core/logx"
)

// ApplicationOcrConsumer 申请提交 OCR 消费者
type ApplicationOcrConsumer struct {
	applicationModel model.IGuideApplicationModel
	provider         ocr.Provider
	logger           logx.Logger
}

// NewApplicationOcrConsumer 创建申请 OCR 消费者
func NewApplicationOcrConsumer(applicationModel model.IGuideApplicationModel, provider ocr.Provider) *ApplicationOcrConsumer {
	return &ApplicationOcrConsumer{
		applicationModel: applicationModel,
		provider:         provider,
		logger:           logx.WithContext(context.Background()),
	}
}

// Subscribe 订阅申请事件主题
func (c *ApplicationOcrConsumer) Subscribe(msgClient *messaging.Client) {
	msgClient.Subscribe(messaging.TopicApplicationEvent, "guide-ocr-handler", c.handleApplicationEvent)
	c.logger.Infof("已订阅 %s 事件", messaging.TopicApplicationEvent)
}

// handleApplicationEvent 处理申请事件（RawMessage 信封格式）
func (c *ApplicationOcrConsumer) handleApplicationEvent(msg *message.Message) error {
	ctx := msg.Context()
	logger := logx.WithContext(ctx)

	// 1. 解析 RawMessage 信封
	var raw messaging.RawMessage
	if err := json.Unmarshal(msg.Payload, &raw); err != nil {
		logger.Errorf("[OcrConsumer] 解析信封失败: %v", err)
		return nil
	}

	// 只处理申请提交事件，审核结果事件由通知服务消费
	if raw.Type != messaging.MsgTypeApplicationSubmitted {
		return nil
	}

	// 2. 解析内层事件数据
	var event messaging.ApplicationSubmittedEvent
	if err := json.Unmarshal([]byte(raw.Data), &event); err != nil {
		logger.Errorf("[OcrConsumer] 解析事件数据失败: %v", err)
		return nil
	}

	// 3. 参数校验
	if event.ApplicationID <= 0 || event.IDCardFrontURL == "" {
		logger.Infof("[OcrConsumer] 无效参数: applicationId=%d", event.ApplicationID)
		return nil
	}

	// 4. OCR 未配置时直接跳过，不触发重试
	if !c.provider.IsAvailable(ctx) {
		logger.Infof("[OcrConsumer] OCR服务未启用，跳过: applicationId=%d", event.ApplicationID)
		return nil
	}

	logger.Infof("[OcrConsumer] 开始识别: applicationId=%d, applicantId=%d",
		event.ApplicationID, event.ApplicantID)

	// 5. 调 OCR 识别身份证正面
	result, err := c.provider.RecognizeIDCard(ctx, event.IDCardFrontURL, event.IDCardBackURL)
	if err != nil {
		logger.Errorf("[OcrConsumer] OCR识别失败: applicationId=%d, err=%v", event.ApplicationID, err)
		return err // 触发重试
	}

	// 6. 回写识别结果供审核员比对
	if err := c.applicationModel.UpdateOCRResult(ctx, event.ApplicationID, result.Name, result.IDNumber); err != nil {
		logger.Errorf("[OcrConsumer] 回写OCR结果失败: applicationId=%d, err=%v", event.ApplicationID, err)
		return err // 触发重试
	}

	// 7. 与申请填写比对，不一致只记日志
	if result.Name != "" && result.Name != event.RealName {
		logger.Infof("[OcrConsumer] 姓名不一致: applicationId=%d, 申请=%s, OCR=%s",
			event.ApplicationID, event.RealName, result.Name)
	}
	if result.IDNumber != "" && result.IDNumber != event.IDNumber {
		logger.Infof("[OcrConsumer] 证号不一致: applicationId=%d", event.ApplicationID)
	}

	logger.Infof("[OcrConsumer] 处理完成: applicationId=%d, platform=%s",
		event.ApplicationID, result.Platform)
	return nil
}
