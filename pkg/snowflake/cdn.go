package snowflake

// CDNBaseURL is the content delivery host for uploaded media.
const CDNBaseURL = "https://cdn.discordapp.com"

// URL returns the direct link to the sound's audio file.
//
//	fmt.Println(snowflake.SoundID(42).URL())
//	// https://cdn.discordapp.com/soundboard-sounds/42
func (id SoundID) URL() string {
	return CDNBaseURL + "/soundboard-sounds/" + id.String()
}
