package main

import "github.com/killallgit/podcast-catalog/cmd"

// @title           Podcast Catalog API
// @version         1.0.0
// @description     Podcast catalog backed by the iTunes Search API with lazy RSS episode sync
// @contact.name    API Support
// @contact.url     https://github.com/killallgit/podcast-catalog
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
func main() {
	cmd.Execute()
}
