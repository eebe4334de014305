/**
 * @projectName: GuidePlatform
 * @package: messaging
 * @className: application_event
 * @description: 地陪申请事件数据定义
 * @version: 1.0
 */

package messaging

// ApplicationSubmittedEvent 地陪申请提交事件
// 消息来源: Guide 服务；消费者: Guide/MQ（OCR 辅助识别）、Notify 服务
type ApplicationSubmittedEvent struct {
	ApplicationID  int64  `json:"application_id"`
	ApplicantID    int64  `json:"applicant_id"`
	RealName       string `json:"real_name"`
	IDNumber       string `json:"id_number"`
	IDCardFrontURL string `json:"id_card_front_url"`
	IDCardBackURL  string `json:"id_card_back_url"`
	Timestamp      int64  `json:"timestamp"`
}

// ApplicationReviewedEvent 地陪申请审核结果事件
type ApplicationReviewedEvent struct {
	ApplicationID int64  `json:"application_id"`
	ApplicantID   int64  `json:"applicant_id"`
	Status        string `json:"status"` // approved | rejected | need_more_info
	Reason        string `json:"reason"`
	Timestamp     int64  `json:"timestamp"`
}
