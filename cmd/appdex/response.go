// SPDX-License-Identifier: MPL-2.0

package main

import "appdex-cli/internal/index"

// DefaultIconPath is the presentation icon used for entries whose own icon
// could not be resolved. The index core leaves such entries iconless; the
// substitution is strictly an adapter concern.
const DefaultIconPath = "/usr/share/icons/Adwaita/scalable/mimetypes/application-x-executable.svg"

type (
	// Response is the launcher payload printed for one query: the ordered
	// matches plus the first match promoted as the primary action. An empty
	// result set carries an error marker instead of elements.
	Response struct {
		Title    string    `json:"title,omitempty"`
		Error    string    `json:"error,omitempty"`
		Elements []Element `json:"elements"`
		Action   *Action   `json:"action,omitempty"`
		SetIcon  string    `json:"set_icon,omitempty"`
	}

	// Element is one displayable match.
	Element struct {
		Name    string `json:"name"`
		Comment string `json:"comment,omitempty"`
		Icon    string `json:"icon"`
		Exec    string `json:"exec"`
	}

	// Action is the launch request attached to the payload.
	Action struct {
		Launch        string `json:"launch"`
		CloseAfterRun bool   `json:"close_after_run"`
	}
)

// responseTitle heads every payload.
const responseTitle = "Launch"

// buildResponse converts query results into the launcher payload. The first
// match supplies the promoted icon and launch command.
func buildResponse(results index.Results) Response {
	if results.Empty() {
		return Response{
			Title:    responseTitle,
			Error:    "No match found",
			Elements: []Element{},
		}
	}

	elements := make([]Element, 0, len(results))
	for _, entry := range results {
		el := Element{
			Name: entry.DisplayName(),
			Icon: DefaultIconPath,
			Exec: entry.Exec,
		}
		if entry.Icon != nil {
			el.Icon = *entry.Icon
		}
		if entry.Comment != nil {
			el.Comment = *entry.Comment
		}
		elements = append(elements, el)
	}

	first, _ := results.First()
	return Response{
		Title:    responseTitle,
		Elements: elements,
		Action: &Action{
			Launch:        first.Exec,
			CloseAfterRun: true,
		},
		SetIcon: elements[0].Icon,
	}
}
