package tw

// Lookup tables for every responsive utility the UI primitives emit. Class
// names are spelled out in full so the stylesheet build can find them in the
// Go sources; nothing here is assembled at runtime.

// GridColsClasses maps a column count to grid-template-columns utilities.
var GridColsClasses = Table[int]{
	Base: {
		1: "grid-cols-1", 2: "grid-cols-2", 3: "grid-cols-3", 4: "grid-cols-4", 5: "grid-cols-5", 6: "grid-cols-6",
		7: "grid-cols-7", 8: "grid-cols-8", 9: "grid-cols-9", 10: "grid-cols-10", 11: "grid-cols-11", 12: "grid-cols-12",
	},
	SM: {
		1: "sm:grid-cols-1", 2: "sm:grid-cols-2", 3: "sm:grid-cols-3", 4: "sm:grid-cols-4", 5: "sm:grid-cols-5", 6: "sm:grid-cols-6",
		7: "sm:grid-cols-7", 8: "sm:grid-cols-8", 9: "sm:grid-cols-9", 10: "sm:grid-cols-10", 11: "sm:grid-cols-11", 12: "sm:grid-cols-12",
	},
	MD: {
		1: "md:grid-cols-1", 2: "md:grid-cols-2", 3: "md:grid-cols-3", 4: "md:grid-cols-4", 5: "md:grid-cols-5", 6: "md:grid-cols-6",
		7: "md:grid-cols-7", 8: "md:grid-cols-8", 9: "md:grid-cols-9", 10: "md:grid-cols-10", 11: "md:grid-cols-11", 12: "md:grid-cols-12",
	},
	LG: {
		1: "lg:grid-cols-1", 2: "lg:grid-cols-2", 3: "lg:grid-cols-3", 4: "lg:grid-cols-4", 5: "lg:grid-cols-5", 6: "lg:grid-cols-6",
		7: "lg:grid-cols-7", 8: "lg:grid-cols-8", 9: "lg:grid-cols-9", 10: "lg:grid-cols-10", 11: "lg:grid-cols-11", 12: "lg:grid-cols-12",
	},
	XL: {
		1: "xl:grid-cols-1", 2: "xl:grid-cols-2", 3: "xl:grid-cols-3", 4: "xl:grid-cols-4", 5: "xl:grid-cols-5", 6: "xl:grid-cols-6",
		7: "xl:grid-cols-7", 8: "xl:grid-cols-8", 9: "xl:grid-cols-9", 10: "xl:grid-cols-10", 11: "xl:grid-cols-11", 12: "xl:grid-cols-12",
	},
	XXL: {
		1: "2xl:grid-cols-1", 2: "2xl:grid-cols-2", 3: "2xl:grid-cols-3", 4: "2xl:grid-cols-4", 5: "2xl:grid-cols-5", 6: "2xl:grid-cols-6",
		7: "2xl:grid-cols-7", 8: "2xl:grid-cols-8", 9: "2xl:grid-cols-9", 10: "2xl:grid-cols-10", 11: "2xl:grid-cols-11", 12: "2xl:grid-cols-12",
	},
}

// GridRowsClasses maps a row count to grid-template-rows utilities.
var GridRowsClasses = Table[int]{
	Base: {
		1: "grid-rows-1", 2: "grid-rows-2", 3: "grid-rows-3", 4: "grid-rows-4", 5: "grid-rows-5", 6: "grid-rows-6",
		7: "grid-rows-7", 8: "grid-rows-8", 9: "grid-rows-9", 10: "grid-rows-10", 11: "grid-rows-11", 12: "grid-rows-12",
	},
	SM: {
		1: "sm:grid-rows-1", 2: "sm:grid-rows-2", 3: "sm:grid-rows-3", 4: "sm:grid-rows-4", 5: "sm:grid-rows-5", 6: "sm:grid-rows-6",
		7: "sm:grid-rows-7", 8: "sm:grid-rows-8", 9: "sm:grid-rows-9", 10: "sm:grid-rows-10", 11: "sm:grid-rows-11", 12: "sm:grid-rows-12",
	},
	MD: {
		1: "md:grid-rows-1", 2: "md:grid-rows-2", 3: "md:grid-rows-3", 4: "md:grid-rows-4", 5: "md:grid-rows-5", 6: "md:grid-rows-6",
		7: "md:grid-rows-7", 8: "md:grid-rows-8", 9: "md:grid-rows-9", 10: "md:grid-rows-10", 11: "md:grid-rows-11", 12: "md:grid-rows-12",
	},
	LG: {
		1: "lg:grid-rows-1", 2: "lg:grid-rows-2", 3: "lg:grid-rows-3", 4: "lg:grid-rows-4", 5: "lg:grid-rows-5", 6: "lg:grid-rows-6",
		7: "lg:grid-rows-7", 8: "lg:grid-rows-8", 9: "lg:grid-rows-9", 10: "lg:grid-rows-10", 11: "lg:grid-rows-11", 12: "lg:grid-rows-12",
	},
	XL: {
		1: "xl:grid-rows-1", 2: "xl:grid-rows-2", 3: "xl:grid-rows-3", 4: "xl:grid-rows-4", 5: "xl:grid-rows-5", 6: "xl:grid-rows-6",
		7: "xl:grid-rows-7", 8: "xl:grid-rows-8", 9: "xl:grid-rows-9", 10: "xl:grid-rows-10", 11: "xl:grid-rows-11", 12: "xl:grid-rows-12",
	},
	XXL: {
		1: "2xl:grid-rows-1", 2: "2xl:grid-rows-2", 3: "2xl:grid-rows-3", 4: "2xl:grid-rows-4", 5: "2xl:grid-rows-5", 6: "2xl:grid-rows-6",
		7: "2xl:grid-rows-7", 8: "2xl:grid-rows-8", 9: "2xl:grid-rows-9", 10: "2xl:grid-rows-10", 11: "2xl:grid-rows-11", 12: "2xl:grid-rows-12",
	},
}

// ColSpanClasses maps a column span (or Full) to col-span utilities.
var ColSpanClasses = Table[int]{
	Base: {
		1: "col-span-1", 2: "col-span-2", 3: "col-span-3", 4: "col-span-4", 5: "col-span-5", 6: "col-span-6",
		7: "col-span-7", 8: "col-span-8", 9: "col-span-9", 10: "col-span-10", 11: "col-span-11", 12: "col-span-12",
		Full: "col-span-full",
	},
	SM: {
		1: "sm:col-span-1", 2: "sm:col-span-2", 3: "sm:col-span-3", 4: "sm:col-span-4", 5: "sm:col-span-5", 6: "sm:col-span-6",
		7: "sm:col-span-7", 8: "sm:col-span-8", 9: "sm:col-span-9", 10: "sm:col-span-10", 11: "sm:col-span-11", 12: "sm:col-span-12",
		Full: "sm:col-span-full",
	},
	MD: {
		1: "md:col-span-1", 2: "md:col-span-2", 3: "md:col-span-3", 4: "md:col-span-4", 5: "md:col-span-5", 6: "md:col-span-6",
		7: "md:col-span-7", 8: "md:col-span-8", 9: "md:col-span-9", 10: "md:col-span-10", 11: "md:col-span-11", 12: "md:col-span-12",
		Full: "md:col-span-full",
	},
	LG: {
		1: "lg:col-span-1", 2: "lg:col-span-2", 3: "lg:col-span-3", 4: "lg:col-span-4", 5: "lg:col-span-5", 6: "lg:col-span-6",
		7: "lg:col-span-7", 8: "lg:col-span-8", 9: "lg:col-span-9", 10: "lg:col-span-10", 11: "lg:col-span-11", 12: "lg:col-span-12",
		Full: "lg:col-span-full",
	},
	XL: {
		1: "xl:col-span-1", 2: "xl:col-span-2", 3: "xl:col-span-3", 4: "xl:col-span-4", 5: "xl:col-span-5", 6: "xl:col-span-6",
		7: "xl:col-span-7", 8: "xl:col-span-8", 9: "xl:col-span-9", 10: "xl:col-span-10", 11: "xl:col-span-11", 12: "xl:col-span-12",
		Full: "xl:col-span-full",
	},
	XXL: {
		1: "2xl:col-span-1", 2: "2xl:col-span-2", 3: "2xl:col-span-3", 4: "2xl:col-span-4", 5: "2xl:col-span-5", 6: "2xl:col-span-6",
		7: "2xl:col-span-7", 8: "2xl:col-span-8", 9: "2xl:col-span-9", 10: "2xl:col-span-10", 11: "2xl:col-span-11", 12: "2xl:col-span-12",
		Full: "2xl:col-span-full",
	},
}

// RowSpanClasses maps a row span (or Full) to row-span utilities.
var RowSpanClasses = Table[int]{
	Base: {
		1: "row-span-1", 2: "row-span-2", 3: "row-span-3", 4: "row-span-4", 5: "row-span-5", 6: "row-span-6",
		7: "row-span-7", 8: "row-span-8", 9: "row-span-9", 10: "row-span-10", 11: "row-span-11", 12: "row-span-12",
		Full: "row-span-full",
	},
	SM: {
		1: "sm:row-span-1", 2: "sm:row-span-2", 3: "sm:row-span-3", 4: "sm:row-span-4", 5: "sm:row-span-5", 6: "sm:row-span-6",
		7: "sm:row-span-7", 8: "sm:row-span-8", 9: "sm:row-span-9", 10: "sm:row-span-10", 11: "sm:row-span-11", 12: "sm:row-span-12",
		Full: "sm:row-span-full",
	},
	MD: {
		1: "md:row-span-1", 2: "md:row-span-2", 3: "md:row-span-3", 4: "md:row-span-4", 5: "md:row-span-5", 6: "md:row-span-6",
		7: "md:row-span-7", 8: "md:row-span-8", 9: "md:row-span-9", 10: "md:row-span-10", 11: "md:row-span-11", 12: "md:row-span-12",
		Full: "md:row-span-full",
	},
	LG: {
		1: "lg:row-span-1", 2: "lg:row-span-2", 3: "lg:row-span-3", 4: "lg:row-span-4", 5: "lg:row-span-5", 6: "lg:row-span-6",
		7: "lg:row-span-7", 8: "lg:row-span-8", 9: "lg:row-span-9", 10: "lg:row-span-10", 11: "lg:row-span-11", 12: "lg:row-span-12",
		Full: "lg:row-span-full",
	},
	XL: {
		1: "xl:row-span-1", 2: "xl:row-span-2", 3: "xl:row-span-3", 4: "xl:row-span-4", 5: "xl:row-span-5", 6: "xl:row-span-6",
		7: "xl:row-span-7", 8: "xl:row-span-8", 9: "xl:row-span-9", 10: "xl:row-span-10", 11: "xl:row-span-11", 12: "xl:row-span-12",
		Full: "xl:row-span-full",
	},
	XXL: {
		1: "2xl:row-span-1", 2: "2xl:row-span-2", 3: "2xl:row-span-3", 4: "2xl:row-span-4", 5: "2xl:row-span-5", 6: "2xl:row-span-6",
		7: "2xl:row-span-7", 8: "2xl:row-span-8", 9: "2xl:row-span-9", 10: "2xl:row-span-10", 11: "2xl:row-span-11", 12: "2xl:row-span-12",
		Full: "2xl:row-span-full",
	},
}

// GapClasses maps a spacing-scale step to gap utilities.
var GapClasses = Table[int]{
	Base: {
		1: "gap-1", 2: "gap-2", 3: "gap-3", 4: "gap-4", 5: "gap-5", 6: "gap-6", 7: "gap-7", 8: "gap-8",
		9: "gap-9", 10: "gap-10", 11: "gap-11", 12: "gap-12", 13: "gap-13", 14: "gap-14", 15: "gap-15", 16: "gap-16",
		20: "gap-20", 24: "gap-24", 28: "gap-28", 32: "gap-32", 36: "gap-36", 40: "gap-40", 44: "gap-44", 48: "gap-48",
		52: "gap-52", 56: "gap-56", 60: "gap-60", 64: "gap-64", 72: "gap-72", 80: "gap-80", 96: "gap-96",
	},
	SM: {
		1: "sm:gap-1", 2: "sm:gap-2", 3: "sm:gap-3", 4: "sm:gap-4", 5: "sm:gap-5", 6: "sm:gap-6", 7: "sm:gap-7", 8: "sm:gap-8",
		9: "sm:gap-9", 10: "sm:gap-10", 11: "sm:gap-11", 12: "sm:gap-12", 13: "sm:gap-13", 14: "sm:gap-14", 15: "sm:gap-15", 16: "sm:gap-16",
		20: "sm:gap-20", 24: "sm:gap-24", 28: "sm:gap-28", 32: "sm:gap-32", 36: "sm:gap-36", 40: "sm:gap-40", 44: "sm:gap-44", 48: "sm:gap-48",
		52: "sm:gap-52", 56: "sm:gap-56", 60: "sm:gap-60", 64: "sm:gap-64", 72: "sm:gap-72", 80: "sm:gap-80", 96: "sm:gap-96",
	},
	MD: {
		1: "md:gap-1", 2: "md:gap-2", 3: "md:gap-3", 4: "md:gap-4", 5: "md:gap-5", 6: "md:gap-6", 7: "md:gap-7", 8: "md:gap-8",
		9: "md:gap-9", 10: "md:gap-10", 11: "md:gap-11", 12: "md:gap-12", 13: "md:gap-13", 14: "md:gap-14", 15: "md:gap-15", 16: "md:gap-16",
		20: "md:gap-20", 24: "md:gap-24", 28: "md:gap-28", 32: "md:gap-32", 36: "md:gap-36", 40: "md:gap-40", 44: "md:gap-44", 48: "md:gap-48",
		52: "md:gap-52", 56: "md:gap-56", 60: "md:gap-60", 64: "md:gap-64", 72: "md:gap-72", 80: "md:gap-80", 96: "md:gap-96",
	},
	LG: {
		1: "lg:gap-1", 2: "lg:gap-2", 3: "lg:gap-3", 4: "lg:gap-4", 5: "lg:gap-5", 6: "lg:gap-6", 7: "lg:gap-7", 8: "lg:gap-8",
		9: "lg:gap-9", 10: "lg:gap-10", 11: "lg:gap-11", 12: "lg:gap-12", 13: "lg:gap-13", 14: "lg:gap-14", 15: "lg:gap-15", 16: "lg:gap-16",
		20: "lg:gap-20", 24: "lg:gap-24", 28: "lg:gap-28", 32: "lg:gap-32", 36: "lg:gap-36", 40: "lg:gap-40", 44: "lg:gap-44", 48: "lg:gap-48",
		52: "lg:gap-52", 56: "lg:gap-56", 60: "lg:gap-60", 64: "lg:gap-64", 72: "lg:gap-72", 80: "lg:gap-80", 96: "lg:gap-96",
	},
	XL: {
		1: "xl:gap-1", 2: "xl:gap-2", 3: "xl:gap-3", 4: "xl:gap-4", 5: "xl:gap-5", 6: "xl:gap-6", 7: "xl:gap-7", 8: "xl:gap-8",
		9: "xl:gap-9", 10: "xl:gap-10", 11: "xl:gap-11", 12: "xl:gap-12", 13: "xl:gap-13", 14: "xl:gap-14", 15: "xl:gap-15", 16: "xl:gap-16",
		20: "xl:gap-20", 24: "xl:gap-24", 28: "xl:gap-28", 32: "xl:gap-32", 36: "xl:gap-36", 40: "xl:gap-40", 44: "xl:gap-44", 48: "xl:gap-48",
		52: "xl:gap-52", 56: "xl:gap-56", 60: "xl:gap-60", 64: "xl:gap-64", 72: "xl:gap-72", 80: "xl:gap-80", 96: "xl:gap-96",
	},
	XXL: {
		1: "2xl:gap-1", 2: "2xl:gap-2", 3: "2xl:gap-3", 4: "2xl:gap-4", 5: "2xl:gap-5", 6: "2xl:gap-6", 7: "2xl:gap-7", 8: "2xl:gap-8",
		9: "2xl:gap-9", 10: "2xl:gap-10", 11: "2xl:gap-11", 12: "2xl:gap-12", 13: "2xl:gap-13", 14: "2xl:gap-14", 15: "2xl:gap-15", 16: "2xl:gap-16",
		20: "2xl:gap-20", 24: "2xl:gap-24", 28: "2xl:gap-28", 32: "2xl:gap-32", 36: "2xl:gap-36", 40: "2xl:gap-40", 44: "2xl:gap-44", 48: "2xl:gap-48",
		52: "2xl:gap-52", 56: "2xl:gap-56", 60: "2xl:gap-60", 64: "2xl:gap-64", 72: "2xl:gap-72", 80: "2xl:gap-80", 96: "2xl:gap-96",
	},
}

// DirectionClasses maps a stack direction to flex-direction utilities.
var DirectionClasses = Table[string]{
	Base: {
		"row": "flex-row", "column": "flex-col",
	},
	SM: {
		"row": "sm:flex-row", "column": "sm:flex-col",
	},
	MD: {
		"row": "md:flex-row", "column": "md:flex-col",
	},
	LG: {
		"row": "lg:flex-row", "column": "lg:flex-col",
	},
	XL: {
		"row": "xl:flex-row", "column": "xl:flex-col",
	},
	XXL: {
		"row": "2xl:flex-row", "column": "2xl:flex-col",
	},
}

// RowAlignClasses holds the cross-axis alignment that accompanies a row direction.
var RowAlignClasses = Table[string]{
	Base: {
		"row": "items-center",
	},
	SM: {
		"row": "sm:items-center",
	},
	MD: {
		"row": "md:items-center",
	},
	LG: {
		"row": "lg:items-center",
	},
	XL: {
		"row": "xl:items-center",
	},
	XXL: {
		"row": "2xl:items-center",
	},
}

// CopySizeClasses maps a copy size to the text-copy typography utilities.
var CopySizeClasses = Table[string]{
	Base: {
		"24": "text-copy-24", "20": "text-copy-20", "18": "text-copy-18",
		"16": "text-copy-16", "14": "text-copy-14", "13": "text-copy-13",
	},
	SM: {
		"24": "sm:text-copy-24", "20": "sm:text-copy-20", "18": "sm:text-copy-18",
		"16": "sm:text-copy-16", "14": "sm:text-copy-14", "13": "sm:text-copy-13",
	},
	MD: {
		"24": "md:text-copy-24", "20": "md:text-copy-20", "18": "md:text-copy-18",
		"16": "md:text-copy-16", "14": "md:text-copy-14", "13": "md:text-copy-13",
	},
	LG: {
		"24": "lg:text-copy-24", "20": "lg:text-copy-20", "18": "lg:text-copy-18",
		"16": "lg:text-copy-16", "14": "lg:text-copy-14", "13": "lg:text-copy-13",
	},
	XL: {
		"24": "xl:text-copy-24", "20": "xl:text-copy-20", "18": "xl:text-copy-18",
		"16": "xl:text-copy-16", "14": "xl:text-copy-14", "13": "xl:text-copy-13",
	},
	XXL: {
		"24": "2xl:text-copy-24", "20": "2xl:text-copy-20", "18": "2xl:text-copy-18",
		"16": "2xl:text-copy-16", "14": "2xl:text-copy-14", "13": "2xl:text-copy-13",
	},
}

// HeaderSizeClasses maps a heading size to the text-heading typography utilities.
var HeaderSizeClasses = Table[string]{
	Base: {
		"72": "text-heading-72", "64": "text-heading-64", "56": "text-heading-56",
		"48": "text-heading-48", "40": "text-heading-40", "32": "text-heading-32",
		"24": "text-heading-24", "20": "text-heading-20", "16": "text-heading-16",
		"14": "text-heading-14",
	},
	SM: {
		"72": "sm:text-heading-72", "64": "sm:text-heading-64", "56": "sm:text-heading-56",
		"48": "sm:text-heading-48", "40": "sm:text-heading-40", "32": "sm:text-heading-32",
		"24": "sm:text-heading-24", "20": "sm:text-heading-20", "16": "sm:text-heading-16",
		"14": "sm:text-heading-14",
	},
	MD: {
		"72": "md:text-heading-72", "64": "md:text-heading-64", "56": "md:text-heading-56",
		"48": "md:text-heading-48", "40": "md:text-heading-40", "32": "md:text-heading-32",
		"24": "md:text-heading-24", "20": "md:text-heading-20", "16": "md:text-heading-16",
		"14": "md:text-heading-14",
	},
	LG: {
		"72": "lg:text-heading-72", "64": "lg:text-heading-64", "56": "lg:text-heading-56",
		"48": "lg:text-heading-48", "40": "lg:text-heading-40", "32": "lg:text-heading-32",
		"24": "lg:text-heading-24", "20": "lg:text-heading-20", "16": "lg:text-heading-16",
		"14": "lg:text-heading-14",
	},
	XL: {
		"72": "xl:text-heading-72", "64": "xl:text-heading-64", "56": "xl:text-heading-56",
		"48": "xl:text-heading-48", "40": "xl:text-heading-40", "32": "xl:text-heading-32",
		"24": "xl:text-heading-24", "20": "xl:text-heading-20", "16": "xl:text-heading-16",
		"14": "xl:text-heading-14",
	},
	XXL: {
		"72": "2xl:text-heading-72", "64": "2xl:text-heading-64", "56": "2xl:text-heading-56",
		"48": "2xl:text-heading-48", "40": "2xl:text-heading-40", "32": "2xl:text-heading-32",
		"24": "2xl:text-heading-24", "20": "2xl:text-heading-20", "16": "2xl:text-heading-16",
		"14": "2xl:text-heading-14",
	},
}
