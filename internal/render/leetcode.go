package render

func leetcodeFamily() Family {
	return Family{
		Default: Table{
			"introduction": func(p Params) Block {
				return Block{
					Intro: "Welcome to the " + p.Name() + " section. This guide will help you understand and master this important topic.",
					Note:  "What you'll learn: Core concepts, implementation patterns, and practical applications of " + p.NameLower() + ".",
				}
			},
			"concept": func(p Params) Block {
				return Block{
					Intro: "Understanding the fundamental concepts behind " + p.NameLower() + ".",
					Cards: []Card{
						card("Key Principles", "Core principles and mental models for this approach"),
						card("When to Use", "Recognize problem patterns that benefit from this technique"),
					},
				}
			},
			"pseudocode": func(p Params) Block {
				return Block{
					Intro: "Step-by-step pseudocode implementation.",
					Code: "// Pseudocode template for " + p.Name() + "\n" +
						"function solve(input):\n" +
						"    // Initialize variables\n" +
						"    // Main logic\n" +
						"    // Return result\n",
				}
			},
			"examples": func(p Params) Block {
				return Block{
					Intro: "Popular LeetCode problems that use " + p.NameLower() + ".",
					Cards: []Card{
						toned("easy", "Example Problem 1", "Problem description and solution approach"),
						toned("medium", "Example Problem 2", "Problem description and solution approach"),
						toned("hard", "Example Problem 3", "Problem description and solution approach"),
					},
				}
			},
			"complexity": func(p Params) Block {
				return Block{
					Intro: "Analyze the time and space complexity of " + p.NameLower() + " solutions.",
					Cards: []Card{
						card("Time Complexity", "Typical time complexity analysis and optimizations"),
						card("Space Complexity", "Memory usage patterns and trade-offs"),
					},
				}
			},
		},
		Fallback: func(p Params) Block {
			return Block{
				Intro: "Detailed content for " + p.BlockLower() + " coming soon.",
				Note:  "This section will cover important aspects of " + p.BlockLower() + " related to " + p.NameLower() + ".",
			}
		},
	}
}
