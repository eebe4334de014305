/**
 * @projectName: GuidePlatform
 * @package: consumer
 * @className: ApplicationEventConsumer
 * @description: 入驻申请事件消费者（审核进度通知）
 * @version: 1.0
 *
 * 消息来源: Guide 服务
 * Topic: application:events（RawMessage 信封格式）
 */

package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"guide-platform/app/notify/model"
	"guide-platform/common/constants"
	"guide-platform/common/messaging"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/zeromicro/go-zero/core/logx"
)

// ApplicationEventConsumer 入驻申请事件消费者
type ApplicationEventConsumer struct {
	notificationModel model.INotificationModel
	logger            logx.Logger
}

// NewApplicationEventConsumer 创建申请事件消费者
func NewApplicationEventConsumer(notificationModel model.INotificationModel) *ApplicationEventConsumer {
	return &ApplicationEventConsumer{
		notificationModel: notificationModel,
		logger:            logx.WithContext(context.Background()),
	}
}

// Subscribe 订阅申请事件主题
func (c *ApplicationEventConsumer) Subscribe(msgClient *messaging.Client) {
	msgClient.Subscribe(messaging.TopicApplicationEvent, "notify-application-handler", c.handleApplicationEvent)
	c.logger.Infof("已订阅 %s 事件", messaging.TopicApplicationEvent)
}

// handleApplicationEvent 处理申请事件（RawMessage 信封格式）
func (c *ApplicationEventConsumer) handleApplicationEvent(msg *message.Message) error {
	ctx := msg.Context()
	logger := logx.WithContext(ctx)

	var raw messaging.RawMessage
	if err := json.Unmarshal(msg.Payload, &raw); err != nil {
		logger.Errorf("[NotifyConsumer] 解析信封失败: %v", err)
		return nil
	}

	var notification *model.Notification
	switch raw.Type {
	case messaging.MsgTypeApplicationSubmitted:
		var e messaging.ApplicationSubmittedEvent
		if err := json.Unmarshal([]byte(raw.Data), &e); err != nil {
			logger.Errorf("[NotifyConsumer] 解析事件数据失败: type=%s, err=%v", raw.Type, err)
			return nil
		}
		notification = applicationNotification(e.ApplicantID, e.ApplicationID,
			"入驻申请已提交", "您的地陪入驻申请已提交，请耐心等待审核")

	case messaging.MsgTypeApplicationReviewed:
		var e messaging.ApplicationReviewedEvent
		if err := json.Unmarshal([]byte(raw.Data), &e); err != nil {
			logger.Errorf("[NotifyConsumer] 解析事件数据失败: type=%s, err=%v", raw.Type, err)
			return nil
		}
		notification = buildReviewedNotification(e)

	default:
		return nil
	}

	if err := c.notificationModel.Create(ctx, notification); err != nil {
		logger.Errorf("[NotifyConsumer] 写入通知失败: type=%s, userID=%d, err=%v",
			raw.Type, notification.UserID, err)
		return err // 触发重试
	}

	logger.Infof("[NotifyConsumer] 通知已写入: type=%s, userID=%d", raw.Type, notification.UserID)
	return nil
}

// buildReviewedNotification 按审核结果构造通知
func buildReviewedNotification(e messaging.ApplicationReviewedEvent) *model.Notification {
	var title, content string
	switch constants.ApplicationStatus(e.Status) {
	case constants.ApplicationStatusApproved:
		title = "入驻申请已通过"
		content = "恭喜！您的地陪入驻申请已通过审核，现在可以开始接单了"
	case constants.ApplicationStatusRejected:
		title = "入驻申请未通过"
		content = "很遗憾，您的地陪入驻申请未通过审核"
		if e.Reason != "" {
			content += "：" + e.Reason
		}
	case constants.ApplicationStatusNeedMoreInfo:
		title = "入驻申请需补充材料"
		content = "您的地陪入驻申请需要补充材料后重新提交"
		if e.Reason != "" {
			content += "：" + e.Reason
		}
	default:
		title = "入驻申请状态更新"
		content = fmt.Sprintf("您的申请状态已更新为：%s",
			constants.GetApplicationStatusName(constants.ApplicationStatus(e.Status)))
	}
	return applicationNotification(e.ApplicantID, e.ApplicationID, title, content)
}

// applicationNotification 构造申请类通知
func applicationNotification(userID, applicationID int64, title, content string) *model.Notification {
	return &model.Notification{
		UserID:  userID,
		Type:    model.NotifyTypeApplication,
		Title:   title,
		Content: content,
		BizRef:  strconv.FormatInt(applicationID, 10),
	}
}
