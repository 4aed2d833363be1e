package classifier

// banknotePrompt is sent together with every image
const banknotePrompt = `You are a currency authentication expert.

Analyze the provided banknote image and return a JSON ONLY with these fields:

{
  "currency_code": "string",
  "confidence": float (0-1),
  "name_en": "string",
  "name_ar": "string",
  "denomination_value": int,
  "is_counterfeit": boolean
}

Rules:
- Reply with JSON ONLY. Do not include any extra text, markdown, or explanation.
- Do NOT wrap the JSON in ` + "```" + ` or ` + "```json" + `.
- If unsure, confidence must be lower.
- denomination_value must be an integer (100, 200, 500, 1000 for SDG).
- If fake or suspicious => is_counterfeit = true.
- name_ar MUST be Arabic translation.
`
