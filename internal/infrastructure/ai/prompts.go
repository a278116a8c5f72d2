package ai

import (
	"fmt"
	"strings"

	"metalmetrics/internal/domain/entities"
)

const systemPrompt = `You are an expert sheetmetal fabrication cost estimator with 20+ years of experience in job shops.
You estimate labor hours, material costs, machine hours, and suggest competitive quote prices.

You MUST respond with ONLY a valid JSON object (no markdown, no code fences, no explanation outside the JSON).
Use this exact schema:

{
  "estimatedLaborHours": <decimal>,
  "estimatedMaterialCost": <decimal>,
  "estimatedMachineHours": <decimal>,
  "overheadPercent": <decimal>,
  "suggestedQuotePrice": <decimal>,
  "reasoning": "<string explaining your estimate>",
  "assumptions": ["<assumption 1>", "<assumption 2>"],
  "confidenceLevel": "<Low|Medium|High>"
}

Rules:
- All numeric values must be positive numbers
- Use the shop's provided rates to calculate the suggested quote price
- Include overhead in the suggested quote price
- Add a reasonable profit margin (15-25%) to the suggested quote price
- List all assumptions you made
- Set confidence based on how much information was provided`

func buildUserPrompt(req entities.AIQuoteRequest) string {
	ops := "None specified"
	if len(req.Operations) > 0 {
		ops = strings.Join(req.Operations, ", ")
	}
	sheet := "Standard"
	if strings.TrimSpace(req.SheetSize) != "" {
		sheet = req.SheetSize
	}
	notes := "None"
	if strings.TrimSpace(req.SpecialNotes) != "" {
		notes = req.SpecialNotes
	}

	return fmt.Sprintf(`Please estimate the cost for the following sheetmetal fabrication job:

MATERIAL:
- Type: %s
- Thickness: %s
- Part Dimensions: %s
- Sheet Size: %s

JOB DETAILS:
- Quantity: %d parts
- Operations: %s
- Complexity: %s
- Special Notes: %s

SHOP RATES:
- Labor Rate: $%s/hour
- Machine Rate: $%s/hour
- Overhead: %s%%

Provide your estimate as a JSON object.`,
		req.MaterialType,
		req.MaterialThickness,
		req.PartDimensions,
		sheet,
		req.Quantity,
		ops,
		req.Complexity,
		notes,
		req.LaborRate.String(),
		req.MachineRate.String(),
		req.OverheadPercent.String(),
	)
}
