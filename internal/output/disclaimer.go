package output

// Disclaimer closes every report.
const Disclaimer = "This report is an estimate for illustration and study only. " +
	"Actual filing follows the rules published by the Ministry of Finance."

// NoAdviceMessage stands in for an empty advice list
const NoAdviceMessage = "No additional advice"
