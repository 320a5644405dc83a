// Package color provides small color value types for embedded use.
//
// Three encodings are available and each can be built from the others:
//
//   - RGB: three 8-bit channels.
//   - HSV: hue in [0, 360], saturation and value in [0, 100].
//   - Temp: a black-body color temperature in [1500, 15000] Kelvin.
//
// All constructors and setters clamp their inputs, so no operation fails.
// Conversions are deterministic and intentionally lossy: RGB and HSV convert
// through integer fixed point, RGB and Temp through float64 curve fits of
// the black-body locus. Round trips are not exact.
//
// Colors can be written as text ("#ff8800", "hsv(30,100,100)", "2700K")
// which makes them usable directly as fields of TOML, YAML or JSON
// configuration structs.
package color
