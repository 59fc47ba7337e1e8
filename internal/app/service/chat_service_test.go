package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxe-fashion/luxe-backend/config"
	"github.com/luxe-fashion/luxe-backend/internal/app/model"
)

func setupChatServiceTest(t *testing.T) ChatService {
	t.Helper()
	return NewChatService(&config.ChatConfig{ResponseDelay: 0})
}

func TestChatService_Greeting(t *testing.T) {
	chatService := setupChatServiceTest(t)

	greeting := chatService.Greeting()

	assert.Equal(t, model.SenderAssistant, greeting.Sender)
	assert.Contains(t, greeting.Content, "LUXE")
	assert.NotEmpty(t, greeting.ID)
}

func TestChatService_Respond_KeywordReplies(t *testing.T) {
	chatService := setupChatServiceTest(t)

	tests := []struct {
		name    string
		message string
		want    string
	}{
		{
			name:    "Product question",
			message: "Tôi muốn tìm sản phẩm áo sơ mi",
			want:    "thời trang cao cấp",
		},
		{
			name:    "Price question",
			message: "Giá có khuyến mãi không?",
			want:    "giảm giá",
		},
		{
			name:    "Size question",
			message: "Shop có size L không?",
			want:    "XS đến XL",
		},
		{
			name:    "Shipping question",
			message: "Bao lâu thì giao hàng?",
			want:    "toàn quốc",
		},
		{
			name:    "Anything else",
			message: "Cho tôi hỏi về chính sách đổi trả",
			want:    "hotline",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply, err := chatService.Respond(tt.message)
			require.NoError(t, err)
			assert.Equal(t, model.SenderAssistant, reply.Sender)
			assert.Contains(t, reply.Content, tt.want)
		})
	}
}

func TestChatService_Respond_EmptyMessage(t *testing.T) {
	chatService := setupChatServiceTest(t)

	for _, message := range []string{"", "   ", "\n\t"} {
		reply, err := chatService.Respond(message)
		assert.ErrorIs(t, err, ErrEmptyMessage)
		assert.Nil(t, reply)
	}
}
