// Package factorio loads Factorio recipe dumps and normalises them into
// recipe.Technology records.
//
// A dump is a JSON array of recipe prototypes, or an object keyed by recipe
// name (the layout of data.raw.recipe). Each prototype is normalised in four
// steps:
//
//  1. Mode selection: fields of the "normal" or "expensive" sub-object
//     override the top-level ones.
//  2. Pluralisation: "result" (+ "result_count", default 1) becomes a
//     one-element "results" list.
//  3. Defaults: "energy_required" defaults to 0.5 seconds and "category" to
//     "crafting"; legacy categories are folded via Options.Categories.
//  4. Item conversion: [name, n] pairs become items of type "item"; objects
//     keep their "type" (default "item") and contribute amount × probability,
//     with amount_min/amount_max averaged when "amount" is absent.
//
// Before conversion the whole dump is validated against an embedded JSON
// Schema. Files ending in ".zst" are decompressed transparently.
//
// Errors:
//
//	– ErrInvalidDump    malformed JSON or a schema violation.
//	– ErrUnknownMode    a mode other than normal or expensive.
//	– *RecipeError      a prototype that cannot be converted (wraps ErrInvalidRecipe).
package factorio
