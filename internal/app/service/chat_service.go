package service

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/luxe-fashion/luxe-backend/config"
	"github.com/luxe-fashion/luxe-backend/internal/app/model"
	"github.com/luxe-fashion/luxe-backend/pkg/logger"
)

var ErrEmptyMessage = errors.New("empty chat message")

type ChatService interface {
	Greeting() model.ChatMessage
	Respond(message string) (*model.ChatMessage, error)
}

type chatService struct {
	delay time.Duration
}

func NewChatService(cfg *config.ChatConfig) ChatService {
	return &chatService{
		delay: cfg.ResponseDelay,
	}
}

// Greeting returns the assistant's opening message shown when the chat
// widget opens.
func (s *chatService) Greeting() model.ChatMessage {
	return assistantMessage("Xin chào! Tôi là trợ lý ảo của LUXE. Tôi có thể giúp bạn tìm sản phẩm, tư vấn size hoặc giải đáp thắc mắc về đơn hàng. Bạn cần hỗ trợ gì?")
}

// Respond produces the assistant reply for one user message. The reply
// is keyword-matched; the configured delay simulates typing.
func (s *chatService) Respond(message string) (*model.ChatMessage, error) {
	if strings.TrimSpace(message) == "" {
		return nil, ErrEmptyMessage
	}

	logger.Debug("Generating assistant reply", map[string]interface{}{
		"length": len(message),
	})

	if s.delay > 0 {
		time.Sleep(s.delay)
	}

	reply := assistantMessage(replyFor(message))
	return &reply, nil
}

func replyFor(message string) string {
	m := strings.ToLower(message)

	switch {
	case strings.Contains(m, "sản phẩm") || strings.Contains(m, "tìm"):
		return "Chúng tôi có nhiều sản phẩm thời trang cao cấp như áo sơ mi lụa, váy dạ hội, áo khoác blazer. Bạn đang tìm loại sản phẩm nào cụ thể?"
	case strings.Contains(m, "giá") || strings.Contains(m, "khuyến mãi"):
		return "Hiện tại chúng tôi đang có chương trình giảm giá lên đến 50% cho nhiều sản phẩm. Bạn có thể xem chi tiết tại trang khuyến mãi."
	case strings.Contains(m, "size") || strings.Contains(m, "kích thước"):
		return "Chúng tôi có đầy đủ size từ XS đến XL. Bạn có thể tham khảo bảng size chi tiết tại trang sản phẩm hoặc cho tôi biết số đo để tư vấn size phù hợp."
	case strings.Contains(m, "giao hàng") || strings.Contains(m, "vận chuyển"):
		return "Chúng tôi giao hàng toàn quốc trong 2-3 ngày làm việc. Miễn phí giao hàng cho đơn hàng trên 500.000đ."
	default:
		return "Cảm ơn bạn đã liên hệ! Tôi sẽ chuyển câu hỏi của bạn đến bộ phận tư vấn. Bạn có thể gọi hotline 1900-1234 để được hỗ trợ nhanh nhất."
	}
}

func assistantMessage(content string) model.ChatMessage {
	return model.ChatMessage{
		ID:        uuid.NewString(),
		Content:   content,
		Sender:    model.SenderAssistant,
		Timestamp: time.Now(),
	}
}
