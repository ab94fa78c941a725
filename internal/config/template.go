package config

// Template is the starting config written by `sonar-select init`.
const Template = `# sonar-select configuration

# SonarQube server root URL.
sonar_url: https://sonarqube.example.com

# User token with "Browse" permission on the projects to list.
# SONAR_URL and SONAR_TOKEN in the environment override these two values.
token: ` + TokenPlaceholder + `

debug: false

# Display order: default | component_branch | group_component_branch
sort: default

# Optional BCP 47 locale used to compare key segments when sorting.
# locale: pt-BR

# Keyword -> color. The first keyword (in this order) found in a project key
# colors its label. Colors: black, red, green, yellow, blue, magenta, cyan,
# white, gray, orange, pink.
colors:
  prod: red
  hml: yellow
  dev: green

# Selected projects. Managed by sonar-select.
projects: []
`
