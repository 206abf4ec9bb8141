package constant

const (
	ChatMessageRoleUser      = "user"
	ChatMessageRoleAssistant = "assistant"
	ChatMessageRoleSystem    = "system"
)

// AssistantGreeting opens every conversation session.
const AssistantGreeting = "Hi! I'm your pest assessment assistant. I'm here to help you through this process and answer any questions you might have."

// ApologyReply is returned verbatim when the text-generation backend times
// out or fails. Session state is preserved so the next turn can retry.
const ApologyReply = "I apologize, but I'm having trouble responding right now. Please try again or continue with your assessment."

// LeadConfirmationReply is shown once all contact details are collected.
// It is emitted even when the persistence backend fails; masking that
// failure from the customer is a deliberate trade-off, the failure itself
// is logged and alerted for operational follow-up.
const LeadConfirmationReply = "Thank you! I've got everything I need. Our pest control team will review your details and reach out to you within 24 hours to discuss treatment options. If anything urgent comes up in the meantime, don't hesitate to ask me."

// AssistantSystemPrompt steers the conversational backend. Mirrors the
// guidance given to human agents: educate, qualify, never diagnose.
const AssistantSystemPrompt = `You are a helpful pest assessment assistant for a pest control web tool. Your role is to:

1. Help users understand the pest assessment process
2. Answer questions about different types of pests (cockroaches, rodents, bed bugs, ants, termites, etc.)
3. Explain what different signs and symptoms might indicate
4. Guide users through the assessment questions
5. Provide general pest identification advice
6. Encourage users to complete the assessment and schedule a consultation for professional help

Guidelines:
- Be friendly, helpful, and professional
- Keep responses concise and easy to understand
- Don't diagnose specific pest problems - encourage users to complete the assessment
- Suggest scheduling a consultation for serious or uncertain cases
- Focus on education and guidance rather than treatment advice
- If asked about pricing or specific services, encourage them to schedule a consultation

Remember: You're here to assist with the assessment process, not to replace professional pest control services.`

// SlotExtractionPrompt asks the backend for a structured read of the
// conversation. The reply must be bare JSON; a fenced block is tolerated.
const SlotExtractionPrompt = `Read the conversation below and extract any facts the customer has explicitly stated about their pest problem and contact details.

Return ONLY a JSON object with these keys (omit a key entirely when the customer has not stated it):
  "pestType"             - the kind of pest (e.g. "rodents", "ants", "cockroaches")
  "location"             - where in the home/property the activity is seen
  "duration"             - how long the problem has been going on
  "frequency"            - how often activity is noticed; normalize to one of: "daily", "frequently", "often", "occasionally", "weekly", "rarely"
  "signsOrDamage"        - droppings, damage, nests, odors etc., or "none"
  "priorAttempts"        - what the customer already tried, or "none"
  "contactName"          - the customer's name
  "contactPhone"         - phone number
  "contactEmail"         - email address
  "contactCity"          - city or area they live in
  "contactPreferredTime" - when they prefer to be called

Rules:
- Only extract facts the customer actually stated. Never guess.
- If an image is attached and clearly shows a pest, you may fill "pestType" from it.
- Values are short plain strings.

Conversation:
`

// Severity disclosure templates, injected exactly once per session when the
// qualification slots are complete. %s placeholders: pest type.
const (
	SevereDisclosureTemplate = `I've reviewed what you've told me and I need to be direct with you - your %s situation is **severe** and requires **immediate professional attention**.

This level of infestation can lead to:
- Significant property damage
- Health risks for you and your family
- Rapidly increasing treatment costs if delayed

**I strongly urge you to schedule a consultation right away.** The professionals can provide emergency service to address this urgent situation.

To get that moving, could I have your name?`

	HighDisclosureTemplate = `I've reviewed what you've told me, and your %s problem is at a **high severity level**.

This means the situation is escalating and needs prompt attention to prevent it from becoming a serious infestation. Professional treatment is strongly recommended to:
- Stop the problem from spreading
- Prevent potential damage
- Save you from higher costs later

**I recommend scheduling a consultation soon** to get expert help before the situation worsens.

To set that up, could I have your name?`

	ModerateDisclosureTemplate = `I've reviewed what you've told me. You have a **moderate** %s situation.

The good news is that you've caught this early! Acting now can prevent a minor issue from becoming a major infestation. Professional consultation can help you:
- Address the problem before it escalates
- Get expert prevention advice
- Save time and money in the long run

**I'd encourage you to consider scheduling a consultation** to get professional guidance tailored to your situation.

To get started, could I have your name?`
)
