package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanApplicationTransition(t *testing.T) {
	tests := []struct {
		name string
		from ApplicationStatus
		to   ApplicationStatus
		want bool
	}{
		{"待审核进入审核中", ApplicationStatusPending, ApplicationStatusUnderReview, true},
		{"待审核直接通过", ApplicationStatusPending, ApplicationStatusApproved, true},
		{"待审核直接拒绝", ApplicationStatusPending, ApplicationStatusRejected, true},
		{"待审核要求补充", ApplicationStatusPending, ApplicationStatusNeedMoreInfo, true},
		{"审核中通过", ApplicationStatusUnderReview, ApplicationStatusApproved, true},
		{"审核中拒绝", ApplicationStatusUnderReview, ApplicationStatusRejected, true},
		{"审核中要求补充", ApplicationStatusUnderReview, ApplicationStatusNeedMoreInfo, true},
		{"被拒后重新提交", ApplicationStatusRejected, ApplicationStatusPending, true},
		{"补充材料后重新提交", ApplicationStatusNeedMoreInfo, ApplicationStatusPending, true},

		{"通过后不可再流转", ApplicationStatusApproved, ApplicationStatusPending, false},
		{"通过后不可拒绝", ApplicationStatusApproved, ApplicationStatusRejected, false},
		{"审核中不可回到待审核", ApplicationStatusUnderReview, ApplicationStatusPending, false},
		{"被拒不能直接通过", ApplicationStatusRejected, ApplicationStatusApproved, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanApplicationTransition(tt.from, tt.to))
		})
	}
}

func TestIsApplicationActive(t *testing.T) {
	assert.True(t, IsApplicationActive(ApplicationStatusPending))
	assert.True(t, IsApplicationActive(ApplicationStatusUnderReview))
	assert.True(t, IsApplicationActive(ApplicationStatusNeedMoreInfo))

	// 终审结论状态不算进行中
	assert.False(t, IsApplicationActive(ApplicationStatusApproved))
	assert.False(t, IsApplicationActive(ApplicationStatusRejected))
}

func TestCanReviewApplication(t *testing.T) {
	assert.True(t, CanReviewApplication(ApplicationStatusPending))
	assert.True(t, CanReviewApplication(ApplicationStatusUnderReview))

	assert.False(t, CanReviewApplication(ApplicationStatusApproved))
	assert.False(t, CanReviewApplication(ApplicationStatusRejected))
	assert.False(t, CanReviewApplication(ApplicationStatusNeedMoreInfo))
}

func TestGetApplicationStatusName(t *testing.T) {
	assert.Equal(t, "待审核", GetApplicationStatusName(ApplicationStatusPending))
	assert.Equal(t, "未知状态", GetApplicationStatusName("whatever"))
}
