package views

import (
	g "maragu.dev/gomponents"
)

// lucide renders an inline stroke icon from lucide path data.
func lucide(size, class string, paths ...string) g.Node {
	nodes := make([]g.Node, 0, len(paths))
	for _, d := range paths {
		nodes = append(nodes, g.El("path", g.Attr("d", d)))
	}
	return g.El("svg",
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		g.Attr("width", size),
		g.Attr("height", size),
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("fill", "none"),
		g.Attr("stroke", "currentColor"),
		g.Attr("stroke-width", "2"),
		g.Attr("stroke-linecap", "round"),
		g.Attr("stroke-linejoin", "round"),
		g.Attr("aria-hidden", "true"),
		g.If(class != "", g.Attr("class", class)),
		g.Group(nodes),
	)
}

func iconMenu() g.Node {
	return lucide("18", "", "M4 6h16", "M4 12h16", "M4 18h16")
}

func iconSend() g.Node {
	return lucide("16", "ml-2", "m22 2-7 20-4-9-9-4Z", "M22 2 11 13")
}
