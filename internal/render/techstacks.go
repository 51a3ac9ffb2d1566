package render

import "github.com/teozhengyang/programming-helper/internal/catalog"

func techStacksFamily() Family {
	intro := Table{
		"introduction": func(p Params) Block {
			return Block{
				Intro: "Welcome to " + p.Name() + ". This overview walks through the core ideas, why it matters, and how to get the most out of it.",
				Note:  "What you will explore: history, mental models, and the best resources to keep learning.",
			}
		},
	}
	return Family{
		Default: intro,
		ByCategory: map[catalog.Category]Table{
			catalog.CategoryLanguage:  languageTable(),
			catalog.CategoryFramework: frameworkTable(),
		},
		Fallback: genericFallback,
	}
}

func languageTable() Table {
	t := Table{
		"syntax": func(p Params) Block {
			return Block{
				Intro: "Learn the fundamental syntax and building blocks of " + p.Name() + ".",
				Code:  "// Syntax examples go here",
			}
		},
		"data-structures": func(Params) Block {
			return Block{
				Intro: "Understand built-in data structures and how to select the right tool for each problem.",
				Cards: []Card{
					card("Arrays and Lists", "Sequential collections"),
					card("Maps and Sets", "Key lookup and uniqueness"),
				},
			}
		},
		"advanced": func(p Params) Block {
			return Block{
				Intro: "Explore advanced features, performance tuning, and idiomatic tooling for " + p.Name() + ".",
				Cards: []Card{
					card("Advanced Features", "Metaprogramming, concurrency, and beyond"),
					card("Performance", "Profiling and optimization"),
				},
			}
		},
		"best-practices": stackBestPractices(
			toned("success", "Recommended", "Idiomatic code patterns"),
			toned("warning", "Watch Outs", "Common pitfalls and anti-patterns"),
		),
	}
	assign(t, func(Params) Block {
		return Block{
			Intro: "Master the type system features that help you model data and enforce contracts.",
			Code:  "// Type system snippets",
		}
	}, "types", "interfaces", "generics")
	assign(t, func(Params) Block {
		return Block{
			Intro: "Dive into intermediate and advanced language capabilities with practical guidance.",
			Cards: []Card{
				card("Core Concepts", "Fundamental patterns and APIs"),
				card("Usage Tips", "Real-world examples"),
			},
		}
	}, "oop", "collections", "concurrency")
	return t
}

func frameworkTable() Table {
	t := Table{
		"best-practices": stackBestPractices(
			toned("success", "Recommended", "Team-approved approaches"),
			toned("warning", "Pitfalls", "Issues we see in reviews"),
		),
	}
	assign(t, func(p Params) Block {
		return Block{
			Intro: "Build reliable applications with " + p.Name() + " by understanding setup and project structure.",
			Cards: []Card{
				card("Getting Started", "Project creation and configuration"),
				card("Core Building Blocks", "How the pieces fit together"),
			},
		}
	}, "setup", "models", "views", "templates", "controllers")
	assign(t, func(p Params) Block {
		return Block{
			Intro: "Take control over request flow, persistence, and extensions in " + p.Name() + ".",
			Code:  "// Framework snippets and patterns",
		}
	}, "routing", "middleware", "data-jpa")
	assign(t, func(Params) Block {
		return Block{
			Intro: "Harness advanced framework capabilities to ship production-ready features.",
			Cards: []Card{
				card("Key Features", "Validation, async flows, and data APIs"),
				card("Usage Patterns", "Implementation strategies"),
			},
		}
	}, "pydantic", "async", "data-fetching", "server-actions")
	assign(t, func(Params) Block {
		return Block{
			Intro: "Structure UI and service layers so teams can scale and maintain features easily.",
			Cards: []Card{
				card("Architecture", "Organizing components and modules"),
				card("Code Examples", "Patterns you can copy-paste"),
			},
		}
	}, "components", "hooks", "state-management", "services")
	assign(t, func(Params) Block {
		return Block{
			Intro: "Ship resilient software by focusing on resiliency, safety, and speed.",
			Cards: []Card{
				card("Best Practices", "Secure and scalable defaults"),
				card("Common Issues", "Debug checklists"),
			},
		}
	}, "security", "error-handling", "performance")
	return t
}

func stackBestPractices(do, dont Card) BlockFunc {
	return func(Params) Block {
		return Block{Cards: []Card{do, dont}}
	}
}
