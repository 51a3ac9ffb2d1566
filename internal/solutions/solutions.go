// Package solutions implements the prefix-sum practice problems linked from the LeetCode pages.
package solutions

import (
	"fmt"
	"strconv"
	"strings"
)

// SubarraySum counts contiguous subarrays of nums whose elements sum to k.
func SubarraySum(nums []int, k int) int {
	seen := map[int]int{0: 1}
	prefix, count := 0, 0
	for _, n := range nums {
		prefix += n
		count += seen[prefix-k]
		seen[prefix]++
	}
	return count
}

// ProductExceptSelf returns, for each index, the product of every other element, without
// division. Zeros are handled naturally by the prefix and suffix passes.
func ProductExceptSelf(nums []int) []int {
	out := make([]int, len(nums))
	acc := 1
	for i, n := range nums {
		out[i] = acc
		acc *= n
	}
	acc = 1
	for i := len(nums) - 1; i >= 0; i-- {
		out[i] *= acc
		acc *= nums[i]
	}
	return out
}

// Sample is one worked run of a solution shown on the examples block.
type Sample struct {
	Problem  string
	Input    string
	Expected string
	Actual   string
}

// Passed reports whether the solution produced the expected output.
func (s Sample) Passed() bool {
	return s.Expected == s.Actual
}

type subarrayCase struct {
	nums []int
	k    int
	want int
}

type productCase struct {
	nums []int
	want []int
}

var subarrayCases = []subarrayCase{
	{nums: []int{1, 1, 1}, k: 2, want: 2},
	{nums: []int{1, 2, 3}, k: 3, want: 2},
	{nums: []int{1, -1, 0}, k: 0, want: 3},
	{nums: []int{3, 4, 7, 2, -3, 1, 4, 2}, k: 7, want: 4},
	{nums: []int{1}, k: 0, want: 0},
}

var productCases = []productCase{
	{nums: []int{1, 2, 3, 4}, want: []int{24, 12, 8, 6}},
	{nums: []int{-1, 1, 0, -3, 3}, want: []int{0, 0, 9, 0, 0}},
	{nums: []int{0, 0}, want: []int{0, 0}},
	{nums: []int{5}, want: []int{1}},
}

// Samples runs both solutions over their reference cases.
func Samples() []Sample {
	out := make([]Sample, 0, len(subarrayCases)+len(productCases))
	for _, c := range subarrayCases {
		out = append(out, Sample{
			Problem:  "560. Subarray Sum Equals K",
			Input:    fmt.Sprintf("nums = %s, k = %d", formatInts(c.nums), c.k),
			Expected: strconv.Itoa(c.want),
			Actual:   strconv.Itoa(SubarraySum(c.nums, c.k)),
		})
	}
	for _, c := range productCases {
		out = append(out, Sample{
			Problem:  "238. Product of Array Except Self",
			Input:    "nums = " + formatInts(c.nums),
			Expected: formatInts(c.want),
			Actual:   formatInts(ProductExceptSelf(c.nums)),
		})
	}
	return out
}

func formatInts(nums []int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = strconv.Itoa(n)
	}
	return "[" + strings.Join(parts, ",") + "]"
}
