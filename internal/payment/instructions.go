package payment

import "strings"

// instructionMap holds the pickup-counter steps shown on the order
// confirmation screen, keyed by method.
var instructionMap = map[Method][]string{
	MethodCash: {
		"Go to the stall counter at your pickup time",
		"Quote your order number {{order_number}}",
		"Prepare cash amounting to {{amount}}",
		"Pay at the counter and keep the receipt",
	},
	MethodGCash: {
		"Open the GCash app",
		"Scan the QR code posted at the stall counter",
		"Enter the amount {{amount}} and confirm with your PIN",
		"Show the payment confirmation together with order number {{order_number}}",
	},
	MethodCard: {
		"Go to the stall counter at your pickup time",
		"Quote your order number {{order_number}}",
		"Tap or insert your debit/credit card for {{amount}}",
		"Keep the charge slip as proof of payment",
	},
}

func GetInstructions(method Method) []string {
	if steps, ok := instructionMap[method]; ok {
		return steps
	}

	return []string{
		"Follow the payment instructions posted at the stall counter",
	}
}

type InstructionVars map[string]string

// InjectVariables substitutes {{key}} placeholders in each step.
func InjectVariables(steps []string, vars InstructionVars) []string {
	out := make([]string, 0, len(steps))
	for _, step := range steps {
		for k, v := range vars {
			step = strings.ReplaceAll(step, "{{"+k+"}}", v)
		}
		out = append(out, step)
	}
	return out
}
