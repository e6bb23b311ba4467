// Theme list tracks highlight.js 11.7.0 (src/styles).

package hljs

// Themes shipped with highlight.js.
//
// The zero value is [ThemeDefault].
const (
	ThemeDefault Theme = iota
	ThemeA11yDark
	ThemeA11yLight
	ThemeAgate
	ThemeAnOldHope
	ThemeAndroidstudio
	ThemeArduinoLight
	ThemeArta
	ThemeAscetic
	ThemeAtelierCave
	ThemeAtelierCaveLight
	ThemeAtelierDune
	ThemeAtelierDuneLight
	ThemeAtelierEstuary
	ThemeAtelierEstuaryLight
	ThemeAtelierForest
	ThemeAtelierForestLight
	ThemeAtelierHeath
	ThemeAtelierHeathLight
	ThemeAtelierLakeside
	ThemeAtelierLakesideLight
	ThemeAtelierPlateau
	ThemeAtelierPlateauLight
	ThemeAtelierSavanna
	ThemeAtelierSavannaLight
	ThemeAtelierSeaside
	ThemeAtelierSeasideLight
	ThemeAtelierSulphurpool
	ThemeAtelierSulphurpoolLight
	ThemeAtomOneDark
	ThemeAtomOneDarkReasonable
	ThemeAtomOneLight
	ThemeBrownPaper
	ThemeCodepenEmbed
	ThemeColorBrewer
	ThemeDarcula
	ThemeDark
	ThemeDevibeans
	ThemeDocco
	ThemeDracula
	ThemeFar
	ThemeFoundation
	ThemeFramer
	ThemeGigavolt
	ThemeGitHub
	ThemeGml
	ThemeGooglecode
	ThemeGradientDark
	ThemeGradientLight
	ThemeGrayscale
	ThemeGruvboxDarkHard
	ThemeGruvboxLightHard
	ThemeHopscotch
	ThemeHybrid
	ThemeIdea
	ThemeIRBlack
	ThemeKimbieDark
	ThemeKimbieLight
	ThemeLightfair
	ThemeLioshi
	ThemeMagula
	ThemeMonoBlue
	ThemeMonokai
	ThemeMonokaiSublime
	ThemeNightOwl
	ThemeNnfxDark
	ThemeNnfxLight
	ThemeObsidian
	ThemeOcean
	ThemeOceanicnext
	ThemePandaSyntaxDark
	ThemePandaSyntaxLight
	ThemePojoaque
	ThemePurebasic
	ThemeQtcreatorDark
	ThemeQtcreatorLight
	ThemeRailcasts
	ThemeRainbow
	ThemeRouteros
	ThemeSchoolBook
	ThemeShapesOfPurple
	ThemeSolarizedDark
	ThemeSolarizedLight
	ThemeSrcery
	ThemeStackoverflowDark
	ThemeStackoverflowLight
	ThemeSunburst
	ThemeTokioNightDark
	ThemeTokioNightLight
	ThemeTomorrow
	ThemeTomorrowNight
	ThemeTomorrowNightBlue
	ThemeTomorrowNightBright
	ThemeVS
	ThemeVS2015
	ThemeXcode
	ThemeXT256
	ThemeZenburn
)

var _themes = [...]string{
	ThemeDefault:                 "default",
	ThemeA11yDark:                "a11y-dark",
	ThemeA11yLight:               "a11y-light",
	ThemeAgate:                   "agate",
	ThemeAnOldHope:               "an-old-hope",
	ThemeAndroidstudio:           "androidstudio",
	ThemeArduinoLight:            "arduino-light",
	ThemeArta:                    "arta",
	ThemeAscetic:                 "ascetic",
	ThemeAtelierCave:             "atelier-cave",
	ThemeAtelierCaveLight:        "atelier-cave-light",
	ThemeAtelierDune:             "atelier-dune",
	ThemeAtelierDuneLight:        "atelier-dune-light",
	ThemeAtelierEstuary:          "atelier-estuary",
	ThemeAtelierEstuaryLight:     "atelier-estuary-light",
	ThemeAtelierForest:           "atelier-forest",
	ThemeAtelierForestLight:      "atelier-forest-light",
	ThemeAtelierHeath:            "atelier-heath",
	ThemeAtelierHeathLight:       "atelier-heath-light",
	ThemeAtelierLakeside:         "atelier-lakeside",
	ThemeAtelierLakesideLight:    "atelier-lakeside-light",
	ThemeAtelierPlateau:          "atelier-plateau",
	ThemeAtelierPlateauLight:     "atelier-plateau-light",
	ThemeAtelierSavanna:          "atelier-savanna",
	ThemeAtelierSavannaLight:     "atelier-savanna-light",
	ThemeAtelierSeaside:          "atelier-seaside",
	ThemeAtelierSeasideLight:     "atelier-seaside-light",
	ThemeAtelierSulphurpool:      "atelier-sulphurpool",
	ThemeAtelierSulphurpoolLight: "atelier-sulphurpool-light",
	ThemeAtomOneDark:             "atom-one-dark",
	ThemeAtomOneDarkReasonable:   "atom-one-dark-reasonable",
	ThemeAtomOneLight:            "atom-one-light",
	ThemeBrownPaper:              "brown-paper",
	ThemeCodepenEmbed:            "codepen-embed",
	ThemeColorBrewer:             "color-brewer",
	ThemeDarcula:                 "darcula",
	ThemeDark:                    "dark",
	ThemeDevibeans:               "devibeans",
	ThemeDocco:                   "docco",
	ThemeDracula:                 "dracula",
	ThemeFar:                     "far",
	ThemeFoundation:              "foundation",
	ThemeFramer:                  "framer",
	ThemeGigavolt:                "gigavolt",
	ThemeGitHub:                  "github",
	ThemeGml:                     "gml",
	ThemeGooglecode:              "googlecode",
	ThemeGradientDark:            "gradient-dark",
	ThemeGradientLight:           "gradient-light",
	ThemeGrayscale:               "grayscale",
	ThemeGruvboxDarkHard:         "gruvbox-dark-hard",
	ThemeGruvboxLightHard:        "gruvbox-light-hard",
	ThemeHopscotch:               "hopscotch",
	ThemeHybrid:                  "hybrid",
	ThemeIdea:                    "idea",
	ThemeIRBlack:                 "ir-black",
	ThemeKimbieDark:              "kimbie-dark",
	ThemeKimbieLight:             "kimbie-light",
	ThemeLightfair:               "lightfair",
	ThemeLioshi:                  "lioshi",
	ThemeMagula:                  "magula",
	ThemeMonoBlue:                "mono-blue",
	ThemeMonokai:                 "monokai",
	ThemeMonokaiSublime:          "monokai-sublime",
	ThemeNightOwl:                "night-owl",
	ThemeNnfxDark:                "nnfx-dark",
	ThemeNnfxLight:               "nnfx-light",
	ThemeObsidian:                "obsidian",
	ThemeOcean:                   "ocean",
	ThemeOceanicnext:             "oceanicnext",
	ThemePandaSyntaxDark:         "panda-syntax-dark",
	ThemePandaSyntaxLight:        "panda-syntax-light",
	ThemePojoaque:                "pojoaque",
	ThemePurebasic:               "purebasic",
	ThemeQtcreatorDark:           "qtcreator-dark",
	ThemeQtcreatorLight:          "qtcreator-light",
	ThemeRailcasts:               "railcasts",
	ThemeRainbow:                 "rainbow",
	ThemeRouteros:                "routeros",
	ThemeSchoolBook:              "school-book",
	ThemeShapesOfPurple:          "shapes-of-purple",
	ThemeSolarizedDark:           "solarized-dark",
	ThemeSolarizedLight:          "solarized-light",
	ThemeSrcery:                  "srcery",
	ThemeStackoverflowDark:       "stackoverflow-dark",
	ThemeStackoverflowLight:      "stackoverflow-light",
	ThemeSunburst:                "sunburst",
	ThemeTokioNightDark:          "tokio-night-dark",
	ThemeTokioNightLight:         "tokio-night-light",
	ThemeTomorrow:                "tomorrow",
	ThemeTomorrowNight:           "tomorrow-night",
	ThemeTomorrowNightBlue:       "tomorrow-night-blue",
	ThemeTomorrowNightBright:     "tomorrow-night-bright",
	ThemeVS:                      "vs",
	ThemeVS2015:                  "vs2015",
	ThemeXcode:                   "xcode",
	ThemeXT256:                   "xt256",
	ThemeZenburn:                 "zenburn",
}
