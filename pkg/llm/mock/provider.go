package mock

import (
	"context"
	"hash/fnv"
	"strings"

	"smartfinance-ai-be/pkg/llm"
)

// Category is the topic the keyword classifier assigns to a question
type Category string

const (
	CategoryBilling   Category = "billing"
	CategoryTechnical Category = "technical"
	CategoryPolicy    Category = "policy"
	CategoryGeneral   Category = "general"
)

// Markers used to recognise the prompts built by the router and the responders
const (
	routingMarker     = "Respond with ONLY the agent name"
	routingQuestion   = "USER QUESTION: "
	responderQuestion = "User Question: "
)

var (
	greetingKeywords  = []string{"hello", "hi", "hey", "good morning", "good afternoon", "good evening", "greetings"}
	billingKeywords   = []string{"bill", "charge", "fee", "payment", "balance", "transaction", "deposit", "withdrawal", "money", "cost", "price"}
	technicalKeywords = []string{"app", "login", "password", "error", "bug", "issue", "problem", "not working", "broken", "technical", "mobile", "browser", "update"}
	policyKeywords    = []string{"policy", "rule", "regulation", "privacy", "security", "account", "feature", "savings", "goal", "reward", "premium", "upgrade"}
)

var responses = map[Category][]string{
	CategoryBilling: {
		"Based on your account activity, I can see your current balance is $2,450.00. Your last transaction was a deposit of $500 on December 3rd. Is there anything specific about your billing you'd like to know?",
		"Your monthly maintenance fee of $12.00 was processed on December 1st. You have auto-pay enabled, which saves you $5/month. Would you like to review your recent transactions?",
		"I've reviewed your account and found no unusual charges. Your spending this month totals $1,245.50, which is 15% lower than last month. Great job managing your expenses!",
		"Your account is in good standing with no pending fees. You earned $2.35 in interest last month. Would you like to explore ways to maximize your savings interest?",
	},
	CategoryTechnical: {
		"I can help with that technical issue! First, try clearing your browser cache and cookies. If you're using the mobile app, make sure you're running the latest version (v2.4.1). Let me know if the issue persists.",
		"Great question! To enable two-factor authentication, go to Settings → Security → Enable 2FA. You'll receive a verification code via SMS or email. This adds an extra layer of security to your account.",
		"The app is fully responsive and works on iOS, Android, and web browsers. For the best experience, I recommend using Chrome, Safari, or Firefox. The mobile app is available in the App Store and Google Play.",
		"To update your notification preferences, navigate to Settings → Notifications. You can customize alerts for transactions, bill reminders, savings goals, and security updates. Would you like help with a specific notification setting?",
	},
	CategoryPolicy: {
		"Our savings goal feature helps you track progress toward financial targets. You can set multiple goals, and we'll automatically calculate how much you need to save monthly. Plus, you earn bonus rewards points for meeting milestones!",
		"SmartFinance AI offers several account protection features: fraud detection, transaction alerts, account freeze capability, and FDIC insurance up to $250,000. Your security is our top priority.",
		"Our privacy policy ensures your data is encrypted and never shared with third parties without consent. We use bank-level encryption (256-bit SSL) and comply with all financial regulations including GDPR and CCPA.",
		"To qualify for premium rewards, maintain a minimum balance of $1,000 and make at least 5 transactions monthly. Premium members earn 2x points on all purchases and get exclusive partner discounts. Would you like to learn more about upgrading?",
	},
	CategoryGeneral: {
		"I'm here to help with any questions about your account, billing, technical issues, or our policies. What would you like to know?",
		"As your AI financial assistant, I can help you with account management, savings goals, rewards tracking, and answering policy questions. How can I assist you today?",
		"I have access to your account information and can provide personalized advice on budgeting, savings, and account features. What brings you here today?",
		"Welcome! I can assist with billing inquiries, technical support, policy questions, or general account information. What would you like help with?",
	},
}

// MockProvider answers without any network. It classifies router prompts by
// keyword and returns canned answers for responder prompts, so the service
// runs end to end when no credentials are configured.
type MockProvider struct{}

var _ llm.LLMProvider = &MockProvider{}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (m *MockProvider) Name() string {
	return "mock"
}

func (m *MockProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var prompt string
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == llm.RoleUser {
			prompt = history[i].Content
			break
		}
	}

	if strings.Contains(prompt, routingMarker) {
		question := between(prompt, routingQuestion, "\n\n"+routingMarker)
		switch Classify(question) {
		case CategoryBilling:
			return "billing_agent", nil
		case CategoryTechnical:
			return "technical_agent", nil
		case CategoryPolicy:
			return "policy_agent", nil
		default:
			return "general", nil
		}
	}

	question := between(prompt, responderQuestion, "\n\n")
	return Respond(question), nil
}

func (m *MockProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return m.Chat(ctx, []llm.Message{{Role: llm.RoleUser, Content: prompt}}, opts...)
}

// Classify picks the category with the most keyword hits. Greetings win
// outright, ties resolve billing, technical, policy in that order, and no
// hits at all means general.
func Classify(question string) Category {
	q := strings.ToLower(question)

	if isGreeting(q) {
		return CategoryGeneral
	}

	best, bestCount := CategoryGeneral, 0
	for _, c := range []struct {
		category Category
		keywords []string
	}{
		{CategoryBilling, billingKeywords},
		{CategoryTechnical, technicalKeywords},
		{CategoryPolicy, policyKeywords},
	} {
		if n := countHits(q, c.keywords); n > bestCount {
			best, bestCount = c.category, n
		}
	}

	return best
}

// Respond returns a canned answer for the question's category. The pick is
// stable for a given question.
func Respond(question string) string {
	pool := responses[Classify(question)]

	h := fnv.New32a()
	h.Write([]byte(question))

	return pool[int(h.Sum32()%uint32(len(pool)))]
}

func countHits(q string, keywords []string) int {
	n := 0
	for _, kw := range keywords {
		if strings.Contains(q, kw) {
			n++
		}
	}
	return n
}

// Greetings are matched on word boundaries so "this" or "which" do not
// count as "hi".
func isGreeting(q string) bool {
	words := strings.FieldsFunc(q, func(r rune) bool {
		return !(r >= 'a' && r <= 'z')
	})
	padded := " " + strings.Join(words, " ") + " "

	for _, kw := range greetingKeywords {
		if strings.Contains(padded, " "+kw+" ") {
			return true
		}
	}
	return false
}

func between(s, start, end string) string {
	i := strings.Index(s, start)
	if i < 0 {
		return strings.TrimSpace(s)
	}
	s = s[i+len(start):]
	if j := strings.Index(s, end); j >= 0 {
		s = s[:j]
	}
	return strings.TrimSpace(s)
}
