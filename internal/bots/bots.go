package bots

// Bot 机器人目录项，运行期只读
type Bot struct {
	ID          string
	Name        string
	Description string
	Category    string
	IconURL     string
}

var catalog = []Bot{
	{
		ID:          "motivation",
		Name:        "Motivation Coach",
		Description: "Daily motivation and personalized coaching",
		Category:    "personal",
		IconURL:     "/icons/motivation.svg",
	},
	{
		ID:          "productivity",
		Name:        "Productivity Assistant",
		Description: "Task management and productivity tips",
		Category:    "work",
		IconURL:     "/icons/productivity.svg",
	},
	{
		ID:          "language",
		Name:        "Language Tutor",
		Description: "Learn new languages with interactive lessons",
		Category:    "education",
		IconURL:     "/icons/language.svg",
	},
	{
		ID:          "support",
		Name:        "Customer Support",
		Description: "24/7 automated support for your customers",
		Category:    "business",
		IconURL:     "/icons/support.svg",
	},
}

// 每个机器人的固定回复，真实推理接入前的占位实现
var replies = map[string]string{
	"motivation":   "You're doing great! Remember that every step forward counts, no matter how small.",
	"productivity": "Have you tried using the Pomodoro technique? 25 minutes of focused work followed by a 5-minute break.",
	"language":     "Great! Let's practice some common phrases in Spanish. Repeat after me: '¿Cómo estás hoy?' (How are you today?)",
	"support":      "I'm happy to help with your question. Could you provide more details about the issue you're experiencing?",
}

// FallbackReply 未知机器人的通用回复
const FallbackReply = "That's interesting! How can I assist you further with this?"

// All 返回完整目录
func All() []Bot {
	out := make([]Bot, len(catalog))
	copy(out, catalog)
	return out
}

// Find 按 ID 查找机器人
func Find(id string) (Bot, bool) {
	for _, b := range catalog {
		if b.ID == id {
			return b, true
		}
	}
	return Bot{}, false
}

// ReplyFor 返回机器人的固定回复，对任意 ID 都有值
func ReplyFor(botID string) string {
	if reply, ok := replies[botID]; ok {
		return reply
	}
	return FallbackReply
}
