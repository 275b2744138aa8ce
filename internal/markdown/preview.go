package markdown

// PreviewLength is the number of characters of content shown in list views.
const PreviewLength = 100

const ellipsis = "..."

// Preview truncates content to the first PreviewLength characters,
// appending an ellipsis marker only when something was cut off.
// Characters are counted as runes so multi-byte content is never split.
func Preview(content string) string {
	runes := []rune(content)
	if len(runes) <= PreviewLength {
		return content
	}
	return string(runes[:PreviewLength]) + ellipsis
}
